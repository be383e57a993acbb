package catalog

// builtinSolvents is the curated solvent reference table.  Bulk properties are
// tabulated at 20-25 degC; DonorNumber is the Gutmann donor number and HBD the
// Kamlet-Taft hydrogen-bond-donor parameter.  Compat entries follow the same
// family order as the ligand table.
var builtinSolvents = []Solvent{
	{Name: "Acetic Acid", CAS: "64-19-7", Abbrev: "AcOH", Dielectric: 6.2, Polarity: 6.2, BoilingPoint: 118, Density: 1.0446, DipoleMoment: 1.74, DonorNumber: 12.6, HBD: 1.12, Compat: [5]float64{0.4, 0.3, 0.6, 0.5, 0.9}, Applications: "Carbonylation, esterification"},
	{Name: "Acetone", CAS: "67-64-1", Abbrev: "Me2CO", Dielectric: 21.01, Polarity: 5.1, BoilingPoint: 56.05, Density: 0.7845, DipoleMoment: 2.69, DonorNumber: 17.0, HBD: 0.08, Compat: [5]float64{0.7, 0.4, 0.3, 0.6, 0.8}, Applications: "Cross-coupling, extraction"},
	{Name: "Acetonitrile", CAS: "75-05-8", Abbrev: "MeCN", Dielectric: 36.64, Polarity: 5.8, BoilingPoint: 81.65, Density: 0.7857, DipoleMoment: 3.92, DonorNumber: 14.1, HBD: 0.19, Compat: [5]float64{0.8, 0.7, 0.3, 0.7, 0.8}, Applications: "Cross-coupling, C-H activation"},
	{Name: "Benzene", CAS: "71-43-2", Abbrev: "PhH", Dielectric: 2.28, Polarity: 2.7, BoilingPoint: 80.1, Density: 0.8765, DipoleMoment: 0, DonorNumber: 0.1, HBD: 0.0, Compat: [5]float64{0.7, 0.5, 0.2, 0.8, 0.7}, Applications: "C-H activation, aromatic chemistry"},
	{Name: "1-Butanol", CAS: "71-36-3", Abbrev: "BuOH", Dielectric: 17.8, Polarity: 3.9, BoilingPoint: 117.7, Density: 0.8095, DipoleMoment: 1.66, DonorNumber: 23.0, HBD: 0.84, Compat: [5]float64{0.5, 0.8, 0.2, 0.5, 0.6}, Applications: "Hydrogenation, extraction"},
	{Name: "2-Butanol", CAS: "78-92-2", Abbrev: "sBuOH", Dielectric: 16.1, Polarity: 3.9, BoilingPoint: 99.5, Density: 0.808, DipoleMoment: 1.63, DonorNumber: 22.0, HBD: 0.83, Compat: [5]float64{0.5, 0.8, 0.2, 0.5, 0.6}, Applications: "Hydrogenation, extraction"},
	{Name: "tert-Butanol", CAS: "75-65-0", Abbrev: "tBuOH", Dielectric: 12.5, Polarity: 4.0, BoilingPoint: 82.2, Density: 0.786, DipoleMoment: 1.67, DonorNumber: 21.5, HBD: 0.68, Compat: [5]float64{0.5, 0.8, 0.2, 0.5, 0.6}, Applications: "Hydrogenation, bulky substrates"},
	{Name: "Carbon Tetrachloride", CAS: "56-23-5", Abbrev: "CCl4", Dielectric: 2.24, Polarity: 1.6, BoilingPoint: 76.72, Density: 1.594, DipoleMoment: 0, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.3, 0.3, 0.8, 0.4, 0.4}, Applications: "Metathesis, chlorination"},
	{Name: "Chloroform", CAS: "67-66-3", Abbrev: "CHCl3", Dielectric: 4.81, Polarity: 4.1, BoilingPoint: 61.2, Density: 1.4892, DipoleMoment: 1.04, DonorNumber: 4.0, HBD: 0.2, Compat: [5]float64{0.6, 0.3, 0.5, 0.6, 0.7}, Applications: "Extraction, cross-coupling"},
	{Name: "Cyclohexane", CAS: "110-82-7", Abbrev: "cHex", Dielectric: 2.02, Polarity: 0.2, BoilingPoint: 80.7, Density: 0.7781, DipoleMoment: 0, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.4, 0.6, 0.6, 0.5, 0.5}, Applications: "Non-polar reactions, extraction"},
	{Name: "Dichloromethane", CAS: "75-09-2", Abbrev: "DCM", Dielectric: 8.93, Polarity: 3.1, BoilingPoint: 39.7, Density: 1.3255, DipoleMoment: 1.6, DonorNumber: 1.0, HBD: 0.13, Compat: [5]float64{0.8, 0.4, 0.3, 0.7, 0.8}, Applications: "Cross-coupling, extraction"},
	{Name: "Diethyl Ether", CAS: "60-29-7", Abbrev: "Et2O", Dielectric: 4.33, Polarity: 2.8, BoilingPoint: 34.5, Density: 0.7134, DipoleMoment: 1.15, DonorNumber: 19.2, HBD: 0.0, Compat: [5]float64{0.7, 0.5, 0.5, 0.6, 0.6}, Applications: "Extraction, hydrogenation"},
	{Name: "Dimethylformamide", CAS: "68-12-2", Abbrev: "DMF", Dielectric: 36.7, Polarity: 6.4, BoilingPoint: 153, Density: 0.9445, DipoleMoment: 3.82, DonorNumber: 26.6, HBD: 0.0, Compat: [5]float64{0.9, 0.7, 0.2, 0.8, 0.9}, Applications: "Cross-coupling, amide formation"},
	{Name: "Dimethyl Sulfoxide", CAS: "67-68-5", Abbrev: "DMSO", Dielectric: 47.2, Polarity: 7.2, BoilingPoint: 189, Density: 1.1004, DipoleMoment: 3.96, DonorNumber: 29.8, HBD: 0.0, Compat: [5]float64{0.8, 0.3, 0.2, 0.9, 0.8}, Applications: "Oxidation, polar reactions"},
	{Name: "Ethanol", CAS: "64-17-5", Abbrev: "EtOH", Dielectric: 24.3, Polarity: 4.3, BoilingPoint: 78.37, Density: 0.7893, DipoleMoment: 1.69, DonorNumber: 19.6, HBD: 0.86, Compat: [5]float64{0.6, 0.9, 0.3, 0.6, 0.7}, Applications: "Hydrogenation, reduction"},
	{Name: "Ethyl Acetate", CAS: "141-78-6", Abbrev: "EtOAc", Dielectric: 6.02, Polarity: 4.4, BoilingPoint: 77.1, Density: 0.897, DipoleMoment: 1.78, DonorNumber: 17.1, HBD: 0.0, Compat: [5]float64{0.7, 0.4, 0.4, 0.6, 0.8}, Applications: "Extraction, esterification"},
	{Name: "Hexane", CAS: "110-54-3", Abbrev: "Hex", Dielectric: 1.88, Polarity: 0.1, BoilingPoint: 68.7, Density: 0.6548, DipoleMoment: 0.08, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.3, 0.5, 0.6, 0.4, 0.4}, Applications: "Non-polar extraction"},
	{Name: "Methanol", CAS: "67-56-1", Abbrev: "MeOH", Dielectric: 32.6, Polarity: 5.1, BoilingPoint: 64.7, Density: 0.7918, DipoleMoment: 1.7, DonorNumber: 19.0, HBD: 0.98, Compat: [5]float64{0.5, 0.9, 0.3, 0.5, 0.6}, Applications: "Hydrogenation, reduction"},
	{Name: "1-Propanol", CAS: "71-23-8", Abbrev: "nPrOH", Dielectric: 20.1, Polarity: 4.0, BoilingPoint: 97.2, Density: 0.8039, DipoleMoment: 1.68, DonorNumber: 20.0, HBD: 0.84, Compat: [5]float64{0.5, 0.9, 0.2, 0.5, 0.6}, Applications: "Hydrogenation, reduction"},
	{Name: "2-Propanol", CAS: "67-63-0", Abbrev: "iPrOH", Dielectric: 18.3, Polarity: 3.9, BoilingPoint: 82.6, Density: 0.7855, DipoleMoment: 1.66, DonorNumber: 21.1, HBD: 0.76, Compat: [5]float64{0.6, 0.8, 0.2, 0.6, 0.6}, Applications: "Hydrogenation, reduction"},
	{Name: "Pyridine", CAS: "110-86-1", Abbrev: "Py", Dielectric: 12.3, Polarity: 5.3, BoilingPoint: 115.2, Density: 0.9819, DipoleMoment: 2.19, DonorNumber: 33.1, HBD: 0.0, Compat: [5]float64{0.7, 0.6, 0.2, 0.8, 0.7}, Applications: "Cross-coupling, base reactions"},
	{Name: "THF", CAS: "109-99-9", Abbrev: "THF", Dielectric: 7.6, Polarity: 4.0, BoilingPoint: 66, Density: 0.8892, DipoleMoment: 1.75, DonorNumber: 20.0, HBD: 0.0, Compat: [5]float64{0.9, 0.6, 0.3, 0.8, 0.8}, Applications: "Cross-coupling, organometallic"},
	{Name: "Toluene", CAS: "108-88-3", Abbrev: "PhMe", Dielectric: 2.38, Polarity: 2.4, BoilingPoint: 110.6, Density: 0.8669, DipoleMoment: 0.31, DonorNumber: 0.1, HBD: 0.0, Compat: [5]float64{0.7, 0.5, 0.2, 0.8, 0.7}, Applications: "C-H activation, aromatic"},
	{Name: "Water", CAS: "7732-18-5", Abbrev: "H2O", Dielectric: 80.1, Polarity: 9.0, BoilingPoint: 100, Density: 0.9982, DipoleMoment: 1.85, DonorNumber: 18.0, HBD: 1.17, Compat: [5]float64{0.2, 0.7, 0.1, 0.3, 0.4}, Applications: "Hydrophilic reactions"},
	{Name: "m-Xylene", CAS: "108-38-3", Abbrev: "m-Xyl", Dielectric: 2.27, Polarity: 2.5, BoilingPoint: 139, Density: 0.864, DipoleMoment: 0.37, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.7, 0.5, 0.2, 0.8, 0.7}, Applications: "C-H activation, aromatic"},
	{Name: "o-Xylene", CAS: "95-47-6", Abbrev: "o-Xyl", Dielectric: 2.57, Polarity: 2.5, BoilingPoint: 144.4, Density: 0.8802, DipoleMoment: 0.45, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.7, 0.5, 0.2, 0.8, 0.7}, Applications: "C-H activation, aromatic"},
	{Name: "p-Xylene", CAS: "106-42-3", Abbrev: "p-Xyl", Dielectric: 2.27, Polarity: 2.5, BoilingPoint: 138.4, Density: 0.8611, DipoleMoment: 0.3, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.7, 0.5, 0.2, 0.8, 0.7}, Applications: "C-H activation, aromatic"},
	{Name: "1,2-Dichloroethane", CAS: "107-06-2", Abbrev: "DCE", Dielectric: 10.36, Polarity: 3.5, BoilingPoint: 83.5, Density: 1.253, DipoleMoment: 1.86, DonorNumber: 0.0, HBD: 0.1, Compat: [5]float64{0.7, 0.4, 0.3, 0.6, 0.7}, Applications: "Cross-coupling, extraction"},
	{Name: "1,4-Dioxane", CAS: "123-91-1", Abbrev: "Diox", Dielectric: 2.21, Polarity: 4.8, BoilingPoint: 101.1, Density: 1.033, DipoleMoment: 0.45, DonorNumber: 14.8, HBD: 0.0, Compat: [5]float64{0.8, 0.6, 0.3, 0.7, 0.8}, Applications: "Cross-coupling, coordination"},
	{Name: "Chlorobenzene", CAS: "108-90-7", Abbrev: "PhCl", Dielectric: 5.62, Polarity: 2.7, BoilingPoint: 131.7, Density: 1.106, DipoleMoment: 1.69, DonorNumber: 3.3, HBD: 0.0, Compat: [5]float64{0.6, 0.5, 0.2, 0.7, 0.6}, Applications: "C-H activation, electrophilic"},
	{Name: "Cyclohexanone", CAS: "108-94-1", Abbrev: "cHexone", Dielectric: 18.3, Polarity: 4.5, BoilingPoint: 155.6, Density: 0.947, DipoleMoment: 2.87, DonorNumber: 16.1, HBD: 0.0, Compat: [5]float64{0.6, 0.3, 0.4, 0.5, 0.7}, Applications: "Ketone chemistry, oxidation"},
	{Name: "Dibutyl Ether", CAS: "142-96-1", Abbrev: "Bu2O", Dielectric: 3.08, Polarity: 2.9, BoilingPoint: 141, Density: 0.764, DipoleMoment: 1.18, DonorNumber: 20.2, HBD: 0.0, Compat: [5]float64{0.6, 0.5, 0.5, 0.5, 0.6}, Applications: "Extraction, non-polar"},
	{Name: "Diisopropyl Ether", CAS: "108-20-3", Abbrev: "iPr2O", Dielectric: 3.88, Polarity: 2.4, BoilingPoint: 68.5, Density: 0.72, DipoleMoment: 1.13, DonorNumber: 19.5, HBD: 0.0, Compat: [5]float64{0.7, 0.5, 0.5, 0.6, 0.6}, Applications: "Extraction, organometallic"},
	{Name: "Ethylene Glycol", CAS: "107-21-1", Abbrev: "EG", Dielectric: 37.7, Polarity: 6.9, BoilingPoint: 197.3, Density: 1.113, DipoleMoment: 2.28, DonorNumber: 19.0, HBD: 0.9, Compat: [5]float64{0.4, 0.8, 0.2, 0.4, 0.5}, Applications: "Polymerization, high bp"},
	{Name: "Heptane", CAS: "142-82-5", Abbrev: "Hept", Dielectric: 1.92, Polarity: 0.2, BoilingPoint: 98.4, Density: 0.684, DipoleMoment: 0, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.3, 0.5, 0.6, 0.4, 0.4}, Applications: "Extraction, non-polar"},
	{Name: "Isobutanol", CAS: "78-83-1", Abbrev: "iBuOH", Dielectric: 17.93, Polarity: 3.9, BoilingPoint: 108, Density: 0.802, DipoleMoment: 1.64, DonorNumber: 21.5, HBD: 0.79, Compat: [5]float64{0.5, 0.8, 0.2, 0.5, 0.6}, Applications: "Hydrogenation, reduction"},
	{Name: "Isopropyl Acetate", CAS: "108-21-4", Abbrev: "iPrOAc", Dielectric: 18.3, Polarity: 4.3, BoilingPoint: 85, Density: 0.872, DipoleMoment: 1.8, DonorNumber: 16.8, HBD: 0.0, Compat: [5]float64{0.7, 0.4, 0.4, 0.6, 0.8}, Applications: "Esterification, extraction"},
	{Name: "Methyl Ethyl Ketone", CAS: "78-93-3", Abbrev: "MEK", Dielectric: 18.5, Polarity: 4.7, BoilingPoint: 79.6, Density: 0.805, DipoleMoment: 2.76, DonorNumber: 17.4, HBD: 0.0, Compat: [5]float64{0.7, 0.3, 0.4, 0.6, 0.8}, Applications: "Ketone chemistry, oxidation"},
	{Name: "N-Methyl-2-pyrrolidone", CAS: "872-50-4", Abbrev: "NMP", Dielectric: 32.2, Polarity: 6.7, BoilingPoint: 202, Density: 1.028, DipoleMoment: 4.09, DonorNumber: 27.3, HBD: 0.0, Compat: [5]float64{0.9, 0.6, 0.2, 0.8, 0.9}, Applications: "Polar aprotic reactions"},
	{Name: "Nitromethane", CAS: "75-52-5", Abbrev: "MeNO2", Dielectric: 35.87, Polarity: 6.7, BoilingPoint: 101.2, Density: 1.138, DipoleMoment: 3.46, DonorNumber: 2.7, HBD: 0.22, Compat: [5]float64{0.6, 0.3, 0.2, 0.7, 0.7}, Applications: "Nitration, polar reactions"},
	{Name: "Pentane", CAS: "109-66-0", Abbrev: "Pent", Dielectric: 1.84, Polarity: 0.0, BoilingPoint: 36.1, Density: 0.626, DipoleMoment: 0, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.3, 0.5, 0.6, 0.4, 0.4}, Applications: "Non-polar extraction"},
	{Name: "Propionic Acid", CAS: "79-09-4", Abbrev: "PrCOOH", Dielectric: 3.44, Polarity: 3.0, BoilingPoint: 141, Density: 0.993, DipoleMoment: 1.75, DonorNumber: 12.8, HBD: 1.12, Compat: [5]float64{0.4, 0.3, 0.6, 0.5, 0.8}, Applications: "Esterification, carbonylation"},
	{Name: "Tetrachloroethylene", CAS: "127-18-4", Abbrev: "PCE", Dielectric: 2.5, Polarity: 2.9, BoilingPoint: 121.2, Density: 1.622, DipoleMoment: 0, DonorNumber: 0.0, HBD: 0.0, Compat: [5]float64{0.4, 0.3, 0.7, 0.5, 0.5}, Applications: "Metathesis, dehydration"},
	{Name: "Triethylamine", CAS: "121-44-8", Abbrev: "NEt3", Dielectric: 2.44, Polarity: 2.9, BoilingPoint: 89.5, Density: 0.726, DipoleMoment: 0.87, DonorNumber: 61.0, HBD: 0.0, Compat: [5]float64{0.8, 0.2, 0.1, 0.9, 0.6}, Applications: "Base reactions, amination"},
	{Name: "2-Methoxyethanol", CAS: "109-86-4", Abbrev: "MeOEtOH", Dielectric: 16.93, Polarity: 5.5, BoilingPoint: 124.5, Density: 0.965, DipoleMoment: 2.18, DonorNumber: 19.0, HBD: 0.9, Compat: [5]float64{0.5, 0.8, 0.2, 0.5, 0.6}, Applications: "Polyol chemistry, reduction"},
	{Name: "Butyl Acetate", CAS: "123-86-4", Abbrev: "BuOAc", Dielectric: 5.01, Polarity: 4.0, BoilingPoint: 126.1, Density: 0.882, DipoleMoment: 1.84, DonorNumber: 16.9, HBD: 0.0, Compat: [5]float64{0.7, 0.4, 0.4, 0.6, 0.8}, Applications: "Esterification, extraction"},
	{Name: "Diethylene Glycol", CAS: "111-46-6", Abbrev: "DEG", Dielectric: 31.69, Polarity: 6.0, BoilingPoint: 245, Density: 1.118, DipoleMoment: 2.31, DonorNumber: 20.0, HBD: 0.91, Compat: [5]float64{0.5, 0.7, 0.2, 0.5, 0.6}, Applications: "High bp polar reactions"},
	{Name: "Hexafluoroisopropanol", CAS: "920-66-1", Abbrev: "HFIP", Dielectric: 16.7, Polarity: 6.6, BoilingPoint: 58.2, Density: 1.596, DipoleMoment: 2.05, DonorNumber: 16.0, HBD: 1.96, Compat: [5]float64{0.3, 0.2, 0.1, 0.4, 0.5}, Applications: "Fluorinated chemistry"},
	{Name: "MeTHF", CAS: "96-47-9", Abbrev: "MeTHF", Dielectric: 7.0, Polarity: 4.0, BoilingPoint: 80.2, Density: 0.854, DipoleMoment: 1.6, DonorNumber: 18.0, HBD: 0.0, Compat: [5]float64{0.9, 0.6, 0.3, 0.8, 0.8}, Applications: "Green THF alternative"},
	{Name: "Cyclopentyl methyl ether", CAS: "5614-37-9", Abbrev: "CPME", Dielectric: 4.76, Polarity: 3.4, BoilingPoint: 106, Density: 0.86, DipoleMoment: 1.23, DonorNumber: 16.5, HBD: 0.0, Compat: [5]float64{0.8, 0.5, 0.4, 0.7, 0.7}, Applications: "Green ether alternative"},
	{Name: "Methyl isobutyl ketone", CAS: "108-10-1", Abbrev: "MIBK", Dielectric: 13.1, Polarity: 4.2, BoilingPoint: 116.5, Density: 0.802, DipoleMoment: 2.79, DonorNumber: 14.3, HBD: 0.0, Compat: [5]float64{0.7, 0.3, 0.4, 0.6, 0.8}, Applications: "Ketone chemistry, extraction"},
	{Name: "t-Amyl-OH", CAS: "75-85-4", Abbrev: "tAmOH", Dielectric: 12.0, Polarity: 4.1, BoilingPoint: 102.0, Density: 0.81, DipoleMoment: 1.7, DonorNumber: 20.5, HBD: 0.65, Compat: [5]float64{0.5, 0.8, 0.2, 0.5, 0.6}, Applications: "Bulky substrate reduction"},
}
