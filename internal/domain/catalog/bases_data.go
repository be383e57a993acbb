package catalog

// builtinBases is the curated base reference table.  PKaH is the conjugate
// acid pKa in water (DMSO-referenced for the strong alkoxides and amide
// superbases), and the nucleophilicity index is a 0-10 relative scale.
var builtinBases = []Base{
	{Name: "K2CO3", Formula: "K2CO3", Type: "Inorganic", PKaH: 10.3, Nucleophilicity: 2.0, Solubility: "Water", Hygroscopicity: "Low", Price: 1, Compat: [5]float64{0.9, 0.4, 0.3, 0.8, 0.8}, Applications: "Suzuki coupling, Ullmann coupling, esterification"},
	{Name: "Cs2CO3", Formula: "Cs2CO3", Type: "Inorganic", PKaH: 10.3, Nucleophilicity: 2.2, Solubility: "Water, polar aprotic", Hygroscopicity: "High", Price: 3, Compat: [5]float64{0.9, 0.4, 0.3, 0.9, 0.8}, Applications: "Buchwald-Hartwig amination, Ullmann coupling"},
	{Name: "Na2CO3", Formula: "Na2CO3", Type: "Inorganic", PKaH: 10.3, Nucleophilicity: 1.8, Solubility: "Water", Hygroscopicity: "Low", Price: 1, Compat: [5]float64{0.8, 0.4, 0.3, 0.6, 0.7}, Applications: "Aqueous Suzuki coupling"},
	{Name: "K3PO4", Formula: "K3PO4", Type: "Inorganic", PKaH: 12.3, Nucleophilicity: 2.5, Solubility: "Water", Hygroscopicity: "Moderate", Price: 2, Compat: [5]float64{0.9, 0.4, 0.3, 0.8, 0.7}, Applications: "Suzuki coupling, C-N coupling"},
	{Name: "KOAc", Formula: "KOAc", Type: "Inorganic", PKaH: 4.76, Nucleophilicity: 3.0, Solubility: "Water, AcOH", Hygroscopicity: "High", Price: 1, Compat: [5]float64{0.7, 0.5, 0.3, 0.9, 0.8}, Applications: "Miyaura borylation, C-H activation"},
	{Name: "NaOAc", Formula: "NaOAc", Type: "Inorganic", PKaH: 4.76, Nucleophilicity: 2.8, Solubility: "Water", Hygroscopicity: "Moderate", Price: 1, Compat: [5]float64{0.6, 0.5, 0.3, 0.8, 0.8}, Applications: "Heck coupling, C-H activation"},
	{Name: "KOtBu", Formula: "KOC(CH3)3", Type: "Organic", PKaH: 17.0, Nucleophilicity: 4.5, Solubility: "THF, tBuOH", Hygroscopicity: "High", Price: 2, Compat: [5]float64{0.8, 0.5, 0.2, 0.7, 0.6}, Applications: "Buchwald-Hartwig amination, benzyne chemistry"},
	{Name: "NaOtBu", Formula: "NaOC(CH3)3", Type: "Organic", PKaH: 17.0, Nucleophilicity: 4.3, Solubility: "THF, tBuOH", Hygroscopicity: "High", Price: 2, Compat: [5]float64{0.8, 0.5, 0.2, 0.6, 0.6}, Applications: "Buchwald-Hartwig amination"},
	{Name: "NaOMe", Formula: "NaOCH3", Type: "Organic", PKaH: 15.5, Nucleophilicity: 5.0, Solubility: "MeOH", Hygroscopicity: "High", Price: 1, Compat: [5]float64{0.6, 0.6, 0.2, 0.4, 0.6}, Applications: "Transesterification, methoxylation"},
	{Name: "KOH", Formula: "KOH", Type: "Inorganic", PKaH: 15.7, Nucleophilicity: 4.0, Solubility: "Water, MeOH", Hygroscopicity: "High", Price: 1, Compat: [5]float64{0.7, 0.5, 0.2, 0.5, 0.7}, Applications: "Hydrolysis, aqueous coupling"},
	{Name: "NaOH", Formula: "NaOH", Type: "Inorganic", PKaH: 15.7, Nucleophilicity: 3.8, Solubility: "Water", Hygroscopicity: "High", Price: 1, Compat: [5]float64{0.7, 0.5, 0.2, 0.5, 0.7}, Applications: "Hydrolysis, saponification"},
	{Name: "Et3N", Formula: "N(C2H5)3", Type: "Organic", PKaH: 10.75, Nucleophilicity: 6.5, Solubility: "Organic", Hygroscopicity: "Low", Price: 1, Compat: [5]float64{0.7, 0.7, 0.4, 0.5, 0.9}, Applications: "Sonogashira coupling, acylation, carbonylation"},
	{Name: "DIPEA", Formula: "N(iPr)2Et", Type: "Organic", PKaH: 10.98, Nucleophilicity: 4.0, Solubility: "Organic", Hygroscopicity: "Low", Price: 2, Compat: [5]float64{0.7, 0.6, 0.4, 0.6, 0.9}, Applications: "Amide coupling, carbonylation"},
	{Name: "DBU", Formula: "C9H16N2", Type: "Superbase", PKaH: 13.5, Nucleophilicity: 5.5, Solubility: "Organic", Hygroscopicity: "Moderate", Price: 2, Compat: [5]float64{0.5, 0.5, 0.3, 0.5, 0.7}, Applications: "Elimination, carboxylation"},
	{Name: "Pyridine", Formula: "C5H5N", Type: "Organic", PKaH: 5.2, Nucleophilicity: 5.0, Solubility: "Water, organic", Hygroscopicity: "Low", Price: 1, Compat: [5]float64{0.5, 0.4, 0.3, 0.7, 0.8}, Applications: "Chan-Lam coupling, acylation"},
	{Name: "NaHCO3", Formula: "NaHCO3", Type: "Inorganic", PKaH: 6.3, Nucleophilicity: 1.5, Solubility: "Water", Hygroscopicity: "Low", Price: 1, Compat: [5]float64{0.6, 0.4, 0.3, 0.5, 0.6}, Applications: "Mild aqueous coupling"},
	{Name: "LiHMDS", Formula: "LiN(SiMe3)2", Type: "Superbase", PKaH: 26.0, Nucleophilicity: 3.0, Solubility: "THF", Hygroscopicity: "High", Price: 3, Compat: [5]float64{0.6, 0.3, 0.2, 0.4, 0.4}, Applications: "Low-temperature amination, enolate chemistry"},
	{Name: "K2HPO4", Formula: "K2HPO4", Type: "Inorganic", PKaH: 7.2, Nucleophilicity: 1.8, Solubility: "Water", Hygroscopicity: "Moderate", Price: 1, Compat: [5]float64{0.7, 0.4, 0.3, 0.7, 0.6}, Applications: "Buffered coupling conditions"},
}
