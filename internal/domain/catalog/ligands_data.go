package catalog

// builtinLigands is the curated ligand reference table.  Descriptor values
// follow the usual literature conventions: Tolman cone angle and electronic
// parameter for phosphines, bite angle for bidentate ligands, and a buried
// volume proxy for steric bulk.  Compat entries are per-family scores in
// [Cross-Coupling, Hydrogenation, Metathesis, C-H_Activation, Carbonylation]
// order.
var builtinLigands = []Ligand{
	{Name: "PPh3", ConeAngle: 145, Electronic: 2068.9, BiteAngle: 0, StericBulk: 245, Donor: 2.73, Price: 1, Denticity: 1, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "General cross-coupling, hydrogenation"},
	{Name: "PCy3", ConeAngle: 170, Electronic: 2056.4, BiteAngle: 0, StericBulk: 310, Donor: 9.7, Price: 2, Denticity: 1, Compat: [5]float64{0.7, 0.9, 0.2, 0.5, 0.7}, Applications: "Hydrogenation, cross-coupling"},
	{Name: "PtBu3", ConeAngle: 182, Electronic: 2056.1, BiteAngle: 0, StericBulk: 350, Donor: 11.4, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.8, 0.3, 0.7, 0.8}, Applications: "Cross-coupling, C-H activation"},
	{Name: "P(o-tol)3", ConeAngle: 150, Electronic: 2066.7, BiteAngle: 0, StericBulk: 285, Donor: 3.1, Price: 1, Denticity: 1, Compat: [5]float64{0.7, 0.8, 0.3, 0.5, 0.7}, Applications: "Cross-coupling"},
	{Name: "P(p-tol)3", ConeAngle: 145, Electronic: 2066.7, BiteAngle: 0, StericBulk: 265, Donor: 3.84, Price: 1, Denticity: 1, Compat: [5]float64{0.7, 0.8, 0.3, 0.5, 0.7}, Applications: "Cross-coupling"},
	{Name: "P(p-F-Ph)3", ConeAngle: 145, Electronic: 2071.3, BiteAngle: 0, StericBulk: 260, Donor: 1.97, Price: 2, Denticity: 1, Compat: [5]float64{0.6, 0.7, 0.3, 0.4, 0.6}, Applications: "Electron-poor substrates"},
	{Name: "P(p-Cl-Ph)3", ConeAngle: 145, Electronic: 2072.8, BiteAngle: 0, StericBulk: 255, Donor: 2.4, Price: 1, Denticity: 1, Compat: [5]float64{0.6, 0.7, 0.3, 0.4, 0.6}, Applications: "Electron-poor substrates"},
	{Name: "P(p-CF3-Ph)3", ConeAngle: 148, Electronic: 2074.3, BiteAngle: 0, StericBulk: 280, Donor: 1.8, Price: 2, Denticity: 1, Compat: [5]float64{0.5, 0.6, 0.3, 0.4, 0.5}, Applications: "Specialized cross-coupling"},
	{Name: "PMePh2", ConeAngle: 136, Electronic: 2067.2, BiteAngle: 0, StericBulk: 220, Donor: 4.57, Price: 1, Denticity: 1, Compat: [5]float64{0.7, 0.8, 0.3, 0.5, 0.7}, Applications: "General catalysis"},
	{Name: "PMe2Ph", ConeAngle: 122, Electronic: 2065.3, BiteAngle: 0, StericBulk: 190, Donor: 6.5, Price: 1, Denticity: 1, Compat: [5]float64{0.6, 0.8, 0.3, 0.4, 0.6}, Applications: "Hydrogenation"},
	{Name: "PMe3", ConeAngle: 118, Electronic: 2064.1, BiteAngle: 0, StericBulk: 160, Donor: 8.65, Price: 1, Denticity: 1, Compat: [5]float64{0.5, 0.7, 0.3, 0.3, 0.5}, Applications: "Small substrate hydrogenation"},
	{Name: "PEt3", ConeAngle: 132, Electronic: 2061.7, BiteAngle: 0, StericBulk: 180, Donor: 8.69, Price: 1, Denticity: 1, Compat: [5]float64{0.5, 0.7, 0.3, 0.3, 0.5}, Applications: "Hydrogenation"},
	{Name: "P(nBu)3", ConeAngle: 132, Electronic: 2060.3, BiteAngle: 0, StericBulk: 240, Donor: 8.43, Price: 1, Denticity: 1, Compat: [5]float64{0.6, 0.8, 0.3, 0.4, 0.6}, Applications: "Cross-coupling"},
	{Name: "P(iPr)3", ConeAngle: 160, Electronic: 2059.2, BiteAngle: 0, StericBulk: 270, Donor: 8.64, Price: 2, Denticity: 1, Compat: [5]float64{0.6, 0.8, 0.3, 0.4, 0.6}, Applications: "Cross-coupling"},
	{Name: "P(2-furyl)3", ConeAngle: 133, Electronic: 2068.5, BiteAngle: 0, StericBulk: 210, Donor: 2.41, Price: 2, Denticity: 1, Compat: [5]float64{0.5, 0.7, 0.3, 0.3, 0.5}, Applications: "Specialized applications"},
	{Name: "P(C6F5)3", ConeAngle: 184, Electronic: 2084.3, BiteAngle: 0, StericBulk: 290, Donor: 1.3, Price: 3, Denticity: 1, Compat: [5]float64{0.4, 0.5, 0.3, 0.3, 0.4}, Applications: "Electron-poor substrates"},
	{Name: "P(p-MeO-Ph)3", ConeAngle: 145, Electronic: 2066.1, BiteAngle: 0, StericBulk: 275, Donor: 4.57, Price: 2, Denticity: 1, Compat: [5]float64{0.6, 0.7, 0.3, 0.4, 0.6}, Applications: "General catalysis"},
	{Name: "P(o-MeO-Ph)3", ConeAngle: 150, Electronic: 2066.3, BiteAngle: 0, StericBulk: 280, Donor: 4.59, Price: 2, Denticity: 1, Compat: [5]float64{0.6, 0.7, 0.3, 0.4, 0.6}, Applications: "General catalysis"},
	{Name: "P(mes)3", ConeAngle: 212, Electronic: 2064.8, BiteAngle: 0, StericBulk: 320, Donor: 6.43, Price: 2, Denticity: 1, Compat: [5]float64{0.5, 0.6, 0.3, 0.3, 0.5}, Applications: "Bulky substrate catalysis"},
	{Name: "SPhos", ConeAngle: 155, Electronic: 2065.7, BiteAngle: 0, StericBulk: 390, Donor: 4.5, Price: 3, Denticity: 1, Compat: [5]float64{0.9, 0.7, 0.2, 0.6, 0.8}, Applications: "Buchwald-Hartwig amination"},
	{Name: "XPhos", ConeAngle: 160, Electronic: 2064.8, BiteAngle: 0, StericBulk: 385, Donor: 4.3, Price: 3, Denticity: 1, Compat: [5]float64{0.9, 0.7, 0.2, 0.6, 0.8}, Applications: "Suzuki-Miyaura coupling"},
	{Name: "RuPhos", ConeAngle: 158, Electronic: 2065.7, BiteAngle: 0, StericBulk: 390, Donor: 4.5, Price: 3, Denticity: 1, Compat: [5]float64{0.9, 0.7, 0.2, 0.6, 0.8}, Applications: "Buchwald-Hartwig amination"},
	{Name: "BrettPhos", ConeAngle: 160, Electronic: 2061.8, BiteAngle: 0, StericBulk: 445, Donor: 4.8, Price: 4, Denticity: 1, Compat: [5]float64{0.9, 0.6, 0.2, 0.7, 0.8}, Applications: "Challenging cross-coupling"},
	{Name: "tBuXPhos", ConeAngle: 160, Electronic: 2060.3, BiteAngle: 0, StericBulk: 425, Donor: 7.0, Price: 4, Denticity: 1, Compat: [5]float64{0.9, 0.6, 0.2, 0.7, 0.8}, Applications: "Sterically hindered substrates"},
	{Name: "JohnPhos", ConeAngle: 155, Electronic: 2064.5, BiteAngle: 0, StericBulk: 365, Donor: 5.2, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.7, 0.2, 0.6, 0.8}, Applications: "General cross-coupling"},
	{Name: "DavePhos", ConeAngle: 155, Electronic: 2063.7, BiteAngle: 0, StericBulk: 365, Donor: 5.2, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.7, 0.2, 0.6, 0.8}, Applications: "General cross-coupling"},
	{Name: "MePhos", ConeAngle: 145, Electronic: 2066.2, BiteAngle: 0, StericBulk: 355, Donor: 4.4, Price: 2, Denticity: 1, Compat: [5]float64{0.8, 0.7, 0.2, 0.5, 0.7}, Applications: "Cross-coupling"},
	{Name: "AmplPhos", ConeAngle: 158, Electronic: 2063.5, BiteAngle: 0, StericBulk: 395, Donor: 4.7, Price: 4, Denticity: 1, Compat: [5]float64{0.9, 0.6, 0.2, 0.6, 0.8}, Applications: "Specialty cross-coupling"},
	{Name: "QPhos", ConeAngle: 160, Electronic: 2062.8, BiteAngle: 0, StericBulk: 380, Donor: 4.5, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.7, 0.2, 0.6, 0.8}, Applications: "Cross-coupling"},
	{Name: "CyJohnPhos", ConeAngle: 157, Electronic: 2064.7, BiteAngle: 0, StericBulk: 375, Donor: 5.1, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.7, 0.2, 0.6, 0.8}, Applications: "Cross-coupling"},
	{Name: "AlPhos", ConeAngle: 158, Electronic: 2063.9, BiteAngle: 0, StericBulk: 385, Donor: 4.6, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.7, 0.2, 0.6, 0.8}, Applications: "Cross-coupling"},
	{Name: "Me4tBuXPhos", ConeAngle: 165, Electronic: 2061.2, BiteAngle: 0, StericBulk: 435, Donor: 7.2, Price: 4, Denticity: 1, Compat: [5]float64{0.9, 0.6, 0.2, 0.7, 0.8}, Applications: "Challenging substrates"},
	{Name: "AdBrettPhos", ConeAngle: 163, Electronic: 2060.5, BiteAngle: 0, StericBulk: 450, Donor: 4.9, Price: 4, Denticity: 1, Compat: [5]float64{0.9, 0.6, 0.2, 0.7, 0.8}, Applications: "Bulky substrates"},
	{Name: "tBuBrettPhos", ConeAngle: 162, Electronic: 2060.8, BiteAngle: 0, StericBulk: 440, Donor: 7.1, Price: 4, Denticity: 1, Compat: [5]float64{0.9, 0.6, 0.2, 0.7, 0.8}, Applications: "Bulky substrates"},
	{Name: "Ph-XPhos", ConeAngle: 159, Electronic: 2065.1, BiteAngle: 0, StericBulk: 395, Donor: 4.4, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.7, 0.2, 0.6, 0.8}, Applications: "Specialty coupling"},
	{Name: "MorDalPhos", ConeAngle: 156, Electronic: 2064.2, BiteAngle: 0, StericBulk: 380, Donor: 5.0, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.7, 0.2, 0.6, 0.8}, Applications: "Specialty coupling"},
	{Name: "BINAP", ConeAngle: 165, Electronic: 2067.8, BiteAngle: 93, StericBulk: 520, Donor: 2.75, Price: 3, Denticity: 2, Compat: [5]float64{0.8, 0.95, 0.3, 0.6, 0.8}, Applications: "Asymmetric hydrogenation"},
	{Name: "Tol-BINAP", ConeAngle: 165, Electronic: 2067.5, BiteAngle: 93, StericBulk: 525, Donor: 2.77, Price: 3, Denticity: 2, Compat: [5]float64{0.8, 0.95, 0.3, 0.6, 0.8}, Applications: "Asymmetric hydrogenation"},
	{Name: "H8-BINAP", ConeAngle: 166, Electronic: 2067.9, BiteAngle: 93, StericBulk: 515, Donor: 2.76, Price: 3, Denticity: 2, Compat: [5]float64{0.8, 0.95, 0.3, 0.6, 0.8}, Applications: "Asymmetric hydrogenation"},
	{Name: "BIPHEP", ConeAngle: 160, Electronic: 2067.4, BiteAngle: 92, StericBulk: 510, Donor: 2.74, Price: 3, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric reactions"},
	{Name: "MeO-BIPHEP", ConeAngle: 165, Electronic: 2066.5, BiteAngle: 92, StericBulk: 520, Donor: 2.75, Price: 3, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric reactions"},
	{Name: "SEGPHOS", ConeAngle: 165, Electronic: 2064.5, BiteAngle: 95, StericBulk: 530, Donor: 2.77, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.95, 0.3, 0.6, 0.8}, Applications: "Asymmetric hydrogenation"},
	{Name: "DM-SEGPHOS", ConeAngle: 168, Electronic: 2064.2, BiteAngle: 95, StericBulk: 535, Donor: 2.78, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.95, 0.3, 0.6, 0.8}, Applications: "Asymmetric hydrogenation"},
	{Name: "DTBM-SEGPHOS", ConeAngle: 175, Electronic: 2063.8, BiteAngle: 95, StericBulk: 545, Donor: 2.79, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.95, 0.3, 0.6, 0.8}, Applications: "Asymmetric hydrogenation"},
	{Name: "C3-TunePhos", ConeAngle: 163, Electronic: 2065.7, BiteAngle: 94, StericBulk: 525, Donor: 2.76, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric reactions"},
	{Name: "DifluorPhos", ConeAngle: 164, Electronic: 2068.2, BiteAngle: 93, StericBulk: 515, Donor: 2.73, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric reactions"},
	{Name: "SynPhos", ConeAngle: 166, Electronic: 2066.8, BiteAngle: 94, StericBulk: 530, Donor: 2.77, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric reactions"},
	{Name: "DPPE", ConeAngle: 125, Electronic: 2073.6, BiteAngle: 85, StericBulk: 360, Donor: 2.76, Price: 1, Denticity: 2, Compat: [5]float64{0.7, 0.8, 0.3, 0.5, 0.7}, Applications: "Cross-coupling"},
	{Name: "DPPP", ConeAngle: 127, Electronic: 2073.0, BiteAngle: 91, StericBulk: 370, Donor: 2.77, Price: 1, Denticity: 2, Compat: [5]float64{0.7, 0.8, 0.3, 0.5, 0.7}, Applications: "Cross-coupling"},
	{Name: "DPPB", ConeAngle: 130, Electronic: 2073.3, BiteAngle: 98, StericBulk: 380, Donor: 2.78, Price: 1, Denticity: 2, Compat: [5]float64{0.7, 0.8, 0.3, 0.5, 0.7}, Applications: "Cross-coupling"},
	{Name: "DPPF", ConeAngle: 125, Electronic: 2072.1, BiteAngle: 96, StericBulk: 425, Donor: 2.8, Price: 2, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.3, 0.6, 0.8}, Applications: "Cross-coupling, carbonylation"},
	{Name: "XantPhos", ConeAngle: 155, Electronic: 2066.5, BiteAngle: 110, StericBulk: 485, Donor: 2.85, Price: 3, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.4, 0.6, 0.8}, Applications: "Cross-coupling, carbonylation"},
	{Name: "DPEPhos", ConeAngle: 140, Electronic: 2066.8, BiteAngle: 102, StericBulk: 445, Donor: 2.83, Price: 3, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.4, 0.6, 0.8}, Applications: "Cross-coupling, carbonylation"},
	{Name: "JOSIPHOS", ConeAngle: 170, Electronic: 2065.4, BiteAngle: 96, StericBulk: 420, Donor: 2.84, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric catalysis"},
	{Name: "DIOP", ConeAngle: 125, Electronic: 2071.8, BiteAngle: 98, StericBulk: 410, Donor: 2.79, Price: 3, Denticity: 2, Compat: [5]float64{0.7, 0.8, 0.3, 0.5, 0.7}, Applications: "Cross-coupling"},
	{Name: "DUPHOS", ConeAngle: 125, Electronic: 2071.5, BiteAngle: 99, StericBulk: 415, Donor: 2.81, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric hydrogenation"},
	{Name: "TangPhos", ConeAngle: 128, Electronic: 2070.8, BiteAngle: 85, StericBulk: 390, Donor: 2.78, Price: 4, Denticity: 2, Compat: [5]float64{0.7, 0.8, 0.3, 0.5, 0.7}, Applications: "Cross-coupling"},
	{Name: "BenzP*", ConeAngle: 165, Electronic: 2069.5, BiteAngle: 92, StericBulk: 420, Donor: 2.82, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.3, 0.6, 0.8}, Applications: "Cross-coupling"},
	{Name: "FerroTANE", ConeAngle: 124, Electronic: 2072.4, BiteAngle: 95, StericBulk: 415, Donor: 2.81, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric catalysis"},
	{Name: "JosiPhos-1", ConeAngle: 172, Electronic: 2065.2, BiteAngle: 96, StericBulk: 425, Donor: 2.85, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.4, 0.6, 0.8}, Applications: "Cross-coupling, carbonylation"},
	{Name: "CyPF-tBu", ConeAngle: 168, Electronic: 2064.8, BiteAngle: 97, StericBulk: 430, Donor: 2.83, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.4, 0.6, 0.8}, Applications: "Cross-coupling, carbonylation"},
	{Name: "QPhos", ConeAngle: 160, Electronic: 2062.8, BiteAngle: 102, StericBulk: 445, Donor: 2.84, Price: 3, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.4, 0.6, 0.8}, Applications: "Cross-coupling, carbonylation"},
	{Name: "BIBOP", ConeAngle: 158, Electronic: 2068.5, BiteAngle: 95, StericBulk: 440, Donor: 2.8, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.4, 0.6, 0.8}, Applications: "Cross-coupling, carbonylation"},
	{Name: "MeO-F12-BIPHEP", ConeAngle: 167, Electronic: 2067.2, BiteAngle: 92, StericBulk: 435, Donor: 2.78, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.4, 0.6, 0.8}, Applications: "Cross-coupling, carbonylation"},
	{Name: "CTH-JORPHOS", ConeAngle: 164, Electronic: 2066.9, BiteAngle: 94, StericBulk: 430, Donor: 2.79, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.8, 0.4, 0.6, 0.8}, Applications: "Specialty coupling"},
	{Name: "IPr", ConeAngle: 175, Electronic: 2051.5, BiteAngle: 0, StericBulk: 420, Donor: 8.5, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis, cross-coupling"},
	{Name: "IMes", ConeAngle: 170, Electronic: 2051.2, BiteAngle: 0, StericBulk: 400, Donor: 8.3, Price: 2, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis, cross-coupling"},
	{Name: "SIPr", ConeAngle: 175, Electronic: 2051.5, BiteAngle: 0, StericBulk: 420, Donor: 8.5, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis, cross-coupling"},
	{Name: "SIMes", ConeAngle: 170, Electronic: 2051.2, BiteAngle: 0, StericBulk: 400, Donor: 8.3, Price: 2, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis, cross-coupling"},
	{Name: "IPrCl", ConeAngle: 175, Electronic: 2052.0, BiteAngle: 0, StericBulk: 425, Donor: 8.45, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Cross-coupling"},
	{Name: "IPent", ConeAngle: 178, Electronic: 2050.8, BiteAngle: 0, StericBulk: 440, Donor: 8.7, Price: 4, Denticity: 1, Compat: [5]float64{0.8, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis"},
	{Name: "IHept", ConeAngle: 180, Electronic: 2050.5, BiteAngle: 0, StericBulk: 445, Donor: 8.75, Price: 4, Denticity: 1, Compat: [5]float64{0.8, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis"},
	{Name: "IAd", ConeAngle: 175, Electronic: 2051.8, BiteAngle: 0, StericBulk: 415, Donor: 8.4, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis"},
	{Name: "ICy", ConeAngle: 168, Electronic: 2052.5, BiteAngle: 0, StericBulk: 380, Donor: 8.15, Price: 2, Denticity: 1, Compat: [5]float64{0.6, 0.4, 0.8, 0.7, 0.5}, Applications: "Cross-coupling"},
	{Name: "ItBu", ConeAngle: 182, Electronic: 2053.2, BiteAngle: 0, StericBulk: 390, Donor: 8.2, Price: 2, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Cross-coupling"},
	{Name: "IBox", ConeAngle: 165, Electronic: 2052.8, BiteAngle: 0, StericBulk: 385, Donor: 8.1, Price: 3, Denticity: 1, Compat: [5]float64{0.6, 0.4, 0.8, 0.7, 0.5}, Applications: "Specialty applications"},
	{Name: "IBiox", ConeAngle: 167, Electronic: 2052.5, BiteAngle: 0, StericBulk: 380, Donor: 8.05, Price: 3, Denticity: 1, Compat: [5]float64{0.6, 0.4, 0.8, 0.7, 0.5}, Applications: "Specialty applications"},
	{Name: "IDD", ConeAngle: 179, Electronic: 2051.6, BiteAngle: 0, StericBulk: 430, Donor: 8.45, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis"},
	{Name: "IAd*", ConeAngle: 177, Electronic: 2051.9, BiteAngle: 0, StericBulk: 410, Donor: 8.35, Price: 3, Denticity: 1, Compat: [5]float64{0.8, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis"},
	{Name: "TMEDA", ConeAngle: 80, Electronic: 2083.2, BiteAngle: 85, StericBulk: 165, Donor: 5.2, Price: 1, Denticity: 2, Compat: [5]float64{0.3, 0.6, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "Pyridine", ConeAngle: 100, Electronic: 2083.2, BiteAngle: 0, StericBulk: 85, Donor: 5.2, Price: 1, Denticity: 1, Compat: [5]float64{0.5, 0.7, 0.2, 0.6, 0.5}, Applications: "Coordination, C-H activation"},
	{Name: "Phenanthroline", ConeAngle: 95, Electronic: 2085.6, BiteAngle: 82, StericBulk: 165, Donor: 4.8, Price: 1, Denticity: 2, Compat: [5]float64{0.4, 0.8, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "Bipyridine", ConeAngle: 95, Electronic: 2085.2, BiteAngle: 81, StericBulk: 160, Donor: 4.85, Price: 1, Denticity: 2, Compat: [5]float64{0.4, 0.8, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "4-DMAP", ConeAngle: 105, Electronic: 2081.5, BiteAngle: 0, StericBulk: 95, Donor: 9.7, Price: 1, Denticity: 1, Compat: [5]float64{0.6, 0.7, 0.2, 0.7, 0.6}, Applications: "Nucleophilic catalysis"},
	{Name: "DBU", ConeAngle: 110, Electronic: 2080.8, BiteAngle: 0, StericBulk: 110, Donor: 12.0, Price: 1, Denticity: 1, Compat: [5]float64{0.2, 0.3, 0.2, 0.4, 0.3}, Applications: "Base catalysis"},
	{Name: "DABCO", ConeAngle: 105, Electronic: 2082.5, BiteAngle: 0, StericBulk: 105, Donor: 8.8, Price: 1, Denticity: 1, Compat: [5]float64{0.2, 0.3, 0.2, 0.4, 0.3}, Applications: "Base catalysis"},
	{Name: "Terpy", ConeAngle: 98, Electronic: 2084.8, BiteAngle: 86, StericBulk: 175, Donor: 4.7, Price: 2, Denticity: 3, Compat: [5]float64{0.4, 0.8, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "Neocuproine", ConeAngle: 96, Electronic: 2085.4, BiteAngle: 82, StericBulk: 170, Donor: 4.85, Price: 2, Denticity: 2, Compat: [5]float64{0.4, 0.8, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "Bathophenanthroline", ConeAngle: 97, Electronic: 2085.8, BiteAngle: 82, StericBulk: 180, Donor: 4.75, Price: 2, Denticity: 2, Compat: [5]float64{0.4, 0.8, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "Bathocuproine", ConeAngle: 97, Electronic: 2085.7, BiteAngle: 82, StericBulk: 185, Donor: 4.8, Price: 2, Denticity: 2, Compat: [5]float64{0.4, 0.8, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "PyBOX", ConeAngle: 102, Electronic: 2084.2, BiteAngle: 88, StericBulk: 190, Donor: 4.9, Price: 3, Denticity: 3, Compat: [5]float64{0.5, 0.8, 0.2, 0.6, 0.5}, Applications: "Asymmetric catalysis"},
	{Name: "Box", ConeAngle: 94, Electronic: 2084.5, BiteAngle: 87, StericBulk: 170, Donor: 4.85, Price: 2, Denticity: 2, Compat: [5]float64{0.5, 0.8, 0.2, 0.6, 0.5}, Applications: "Asymmetric catalysis"},
	{Name: "Quinox", ConeAngle: 93, Electronic: 2085.1, BiteAngle: 83, StericBulk: 165, Donor: 4.8, Price: 2, Denticity: 2, Compat: [5]float64{0.4, 0.8, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "TMCDA", ConeAngle: 82, Electronic: 2083.5, BiteAngle: 85, StericBulk: 170, Donor: 5.3, Price: 1, Denticity: 2, Compat: [5]float64{0.3, 0.6, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "PMETA", ConeAngle: 85, Electronic: 2083.8, BiteAngle: 85, StericBulk: 165, Donor: 4.75, Price: 2, Denticity: 2, Compat: [5]float64{0.4, 0.7, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "DiPIC", ConeAngle: 88, Electronic: 2084.1, BiteAngle: 84, StericBulk: 170, Donor: 4.85, Price: 2, Denticity: 2, Compat: [5]float64{0.4, 0.7, 0.2, 0.5, 0.4}, Applications: "Coordination"},
	{Name: "MonoPhos", ConeAngle: 125, Electronic: 2069.5, BiteAngle: 0, StericBulk: 280, Donor: 3.5, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.9, 0.3, 0.5, 0.7}, Applications: "Asymmetric hydrogenation"},
	{Name: "PipPhos", ConeAngle: 128, Electronic: 2069.8, BiteAngle: 0, StericBulk: 285, Donor: 3.55, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.9, 0.3, 0.5, 0.7}, Applications: "Asymmetric hydrogenation"},
	{Name: "SIPHOS", ConeAngle: 127, Electronic: 2069.2, BiteAngle: 0, StericBulk: 290, Donor: 3.45, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.9, 0.3, 0.5, 0.7}, Applications: "Asymmetric catalysis"},
	{Name: "QUINAP", ConeAngle: 158, Electronic: 2068.5, BiteAngle: 72, StericBulk: 310, Donor: 3.4, Price: 4, Denticity: 2, Compat: [5]float64{0.8, 0.9, 0.3, 0.6, 0.8}, Applications: "Asymmetric catalysis"},
	{Name: "TADDOL-based", ConeAngle: 135, Electronic: 2069.0, BiteAngle: 0, StericBulk: 295, Donor: 3.5, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.9, 0.3, 0.5, 0.7}, Applications: "Asymmetric catalysis"},
	{Name: "PhosphorAmidite", ConeAngle: 130, Electronic: 2069.4, BiteAngle: 0, StericBulk: 285, Donor: 3.45, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.9, 0.3, 0.5, 0.7}, Applications: "Asymmetric catalysis"},
	{Name: "IMes\u00b7HCl", ConeAngle: 170, Electronic: 2051.2, BiteAngle: 0, StericBulk: 400, Donor: 8.3, Price: 2, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis precursor"},
	{Name: "IPr\u00b7HCl", ConeAngle: 175, Electronic: 2051.5, BiteAngle: 0, StericBulk: 420, Donor: 8.5, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis precursor"},
	{Name: "SIMes\u00b7HCl", ConeAngle: 170, Electronic: 2051.2, BiteAngle: 0, StericBulk: 400, Donor: 8.3, Price: 2, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis precursor"},
	{Name: "SIPr\u00b7HCl", ConeAngle: 175, Electronic: 2051.5, BiteAngle: 0, StericBulk: 420, Donor: 8.5, Price: 3, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Metathesis precursor"},
	{Name: "ICy\u00b7HCl", ConeAngle: 168, Electronic: 2052.5, BiteAngle: 0, StericBulk: 380, Donor: 8.15, Price: 2, Denticity: 1, Compat: [5]float64{0.6, 0.4, 0.8, 0.7, 0.5}, Applications: "Cross-coupling precursor"},
	{Name: "ItBu\u00b7HCl", ConeAngle: 182, Electronic: 2053.2, BiteAngle: 0, StericBulk: 390, Donor: 8.2, Price: 2, Denticity: 1, Compat: [5]float64{0.7, 0.4, 0.9, 0.8, 0.6}, Applications: "Cross-coupling precursor"},
	{Name: "dba", ConeAngle: 90, Electronic: 2090.0, BiteAngle: 0, StericBulk: 120, Donor: 8.8, Price: 1, Denticity: 2, Compat: [5]float64{0.3, 0.3, 0.5, 0.4, 0.3}, Applications: "Stabilizing ligand"},
	{Name: "Acac", ConeAngle: 90, Electronic: 2090.0, BiteAngle: 90, StericBulk: 120, Donor: 8.8, Price: 1, Denticity: 2, Compat: [5]float64{0.5, 0.5, 0.3, 0.4, 0.5}, Applications: "Stabilizing ligand"},
	{Name: "COD", ConeAngle: 80, Electronic: 2089.5, BiteAngle: 0, StericBulk: 110, Donor: 0.0, Price: 1, Denticity: 2, Compat: [5]float64{0.6, 0.6, 0.7, 0.5, 0.6}, Applications: "Diene ligand"},
	{Name: "Cp", ConeAngle: 85, Electronic: 2088.0, BiteAngle: 0, StericBulk: 85, Donor: 0.0, Price: 1, Denticity: 1, Compat: [5]float64{0.4, 0.4, 0.6, 0.5, 0.4}, Applications: "Cyclic ligand"},
	{Name: "Cp*", ConeAngle: 85, Electronic: 2087.5, BiteAngle: 0, StericBulk: 95, Donor: 0.0, Price: 2, Denticity: 1, Compat: [5]float64{0.4, 0.4, 0.6, 0.5, 0.4}, Applications: "Cyclic ligand"},
	{Name: "tBuCp", ConeAngle: 90, Electronic: 2088.2, BiteAngle: 0, StericBulk: 105, Donor: 0.0, Price: 2, Denticity: 1, Compat: [5]float64{0.4, 0.4, 0.6, 0.5, 0.4}, Applications: "Cyclic ligand"},
	{Name: "IndCp", ConeAngle: 88, Electronic: 2088.5, BiteAngle: 0, StericBulk: 95, Donor: 0.0, Price: 2, Denticity: 1, Compat: [5]float64{0.4, 0.4, 0.6, 0.5, 0.4}, Applications: "Cyclic ligand"},
	{Name: "TMS-Cp", ConeAngle: 86, Electronic: 2088.3, BiteAngle: 0, StericBulk: 100, Donor: 0.0, Price: 2, Denticity: 1, Compat: [5]float64{0.4, 0.4, 0.6, 0.5, 0.4}, Applications: "Cyclic ligand"},
	{Name: "Allyl", ConeAngle: 82, Electronic: 2089.2, BiteAngle: 0, StericBulk: 80, Donor: 0.0, Price: 1, Denticity: 1, Compat: [5]float64{0.5, 0.5, 0.7, 0.6, 0.5}, Applications: "\u03c0-Allyl ligand"},
	{Name: "cod", ConeAngle: 80, Electronic: 2089.5, BiteAngle: 0, StericBulk: 110, Donor: 0.0, Price: 1, Denticity: 2, Compat: [5]float64{0.6, 0.6, 0.7, 0.5, 0.6}, Applications: "Diene ligand"},
	{Name: "nbd", ConeAngle: 80, Electronic: 2089.5, BiteAngle: 0, StericBulk: 105, Donor: 0.0, Price: 1, Denticity: 2, Compat: [5]float64{0.6, 0.6, 0.7, 0.5, 0.6}, Applications: "Diene ligand"},
	{Name: "PhCN", ConeAngle: 95, Electronic: 2082.5, BiteAngle: 0, StericBulk: 95, Donor: 5.2, Price: 1, Denticity: 1, Compat: [5]float64{0.4, 0.6, 0.3, 0.4, 0.5}, Applications: "Nitrile ligand"},
	{Name: "4-pic", ConeAngle: 98, Electronic: 2083.0, BiteAngle: 0, StericBulk: 90, Donor: 5.25, Price: 1, Denticity: 1, Compat: [5]float64{0.4, 0.6, 0.3, 0.4, 0.4}, Applications: "Pyridine derivative"},
	{Name: "TMHD", ConeAngle: 92, Electronic: 2089.8, BiteAngle: 88, StericBulk: 125, Donor: 8.7, Price: 1, Denticity: 2, Compat: [5]float64{0.5, 0.5, 0.6, 0.5, 0.5}, Applications: "\u03b2-Diketonate"},
	{Name: "hfacac", ConeAngle: 88, Electronic: 2091.2, BiteAngle: 90, StericBulk: 130, Donor: 8.85, Price: 2, Denticity: 2, Compat: [5]float64{0.5, 0.5, 0.6, 0.5, 0.5}, Applications: "\u03b2-Diketonate"},
}
