package sieve

// defaultEntries is the abridged educational table. It is not exhaustive.
var defaultEntries = []Entry{
	{
		Name: "Fever",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"Thyrotoxicosis", "Drug fever"},
			string(CategoryEnvironmental): {"Heat stroke", "Dehydration"},
			string(CategoryTechnique):     {"Post-vaccination reaction", "Contaminated sample/false positive"},
			string(CategoryReactive):      {"SLE flare", "Vasculitis"},
			string(CategoryInfection):     {"Viral URTI", "Pneumonia", "UTI", "Sepsis"},
			string(CategoryCongenital):    {"Lymphoma", "Leukemia"},
		},
	},
	{
		Name: "Cough",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"GERD-related microaspiration"},
			string(CategoryEnvironmental): {"Smoking", "Allergen exposure"},
			string(CategoryTechnique):     {"ACE-inhibitor cough", "Post-intubation irritation"},
			string(CategoryReactive):      {"Asthma", "Eosinophilic bronchitis"},
			string(CategoryInfection):     {"Viral bronchitis", "Pneumonia", "Tuberculosis"},
			string(CategoryCongenital):    {"Cystic fibrosis", "Lung cancer"},
		},
	},
	{
		Name: "Chest Pain",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"Thyrotoxicosis-related angina", "Electrolyte imbalance (muscle pain)"},
			string(CategoryEnvironmental): {"Cocaine/amphetamine use", "Cold exposure (vasospasm)"},
			string(CategoryTechnique):     {"Post-PCI complication", "Medication-induced esophagitis"},
			string(CategoryReactive):      {"Pericarditis (autoimmune)", "Costochondritis"},
			string(CategoryInfection):     {"Myocarditis", "Pneumonia", "Pericarditis (infectious)"},
			string(CategoryCongenital):    {"Hypertrophic cardiomyopathy", "Esophageal cancer"},
		},
	},
	{
		Name: "Shortness of Breath",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"Metabolic acidosis", "Anemia"},
			string(CategoryEnvironmental): {"Smoking-related COPD", "High altitude"},
			string(CategoryTechnique):     {"Fluid overload from IVs", "Beta-blocker induced bronchospasm"},
			string(CategoryReactive):      {"Asthma", "Anaphylaxis"},
			string(CategoryInfection):     {"Pneumonia", "COVID-19"},
			string(CategoryCongenital):    {"Congenital heart disease", "Lung cancer"},
		},
	},
	{
		Name: "Abdominal Pain",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"DKA", "Acute porphyria"},
			string(CategoryEnvironmental): {"Alcohol-related pancreatitis", "Foodborne illness"},
			string(CategoryTechnique):     {"Post-op ileus", "Post-ERCP pancreatitis"},
			string(CategoryReactive):      {"IBD flare (Crohn's/UC)", "Celiac disease"},
			string(CategoryInfection):     {"Appendicitis", "Cholecystitis", "Gastroenteritis"},
			string(CategoryCongenital):    {"Meckel's diverticulum", "Colorectal cancer"},
		},
	},
	{
		Name: "Headache",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"Hyponatremia", "Hypercapnia"},
			string(CategoryEnvironmental): {"Caffeine withdrawal", "CO exposure"},
			string(CategoryTechnique):     {"Post–lumbar puncture", "Medication overuse headache"},
			string(CategoryReactive):      {"Temporal arteritis", "Autoimmune disease (e.g., SLE)"},
			string(CategoryInfection):     {"Meningitis", "Sinusitis"},
			string(CategoryCongenital):    {"AV malformation", "Brain tumor"},
		},
	},
	{
		Name: "Nausea/Vomiting",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"Pregnancy (hormonal)", "Uremia"},
			string(CategoryEnvironmental): {"Motion sickness", "Alcohol intoxication"},
			string(CategoryTechnique):     {"Opioid side effect", "Post-op anesthesia", "Chemotherapy-induced"},
			string(CategoryReactive):      {"Migraine", "Diabetic gastroparesis"},
			string(CategoryInfection):     {"Viral gastroenteritis", "Hepatitis"},
			string(CategoryCongenital):    {"Pyloric stenosis (infant)", "GI malignancy"},
		},
	},
	{
		Name: "Diarrhea",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"Hyperthyroidism", "Diabetic autonomic neuropathy"},
			string(CategoryEnvironmental): {"Lactose intolerance", "Traveler's diarrhea exposure"},
			string(CategoryTechnique):     {"Antibiotic-associated (C. difficile)", "Bowel prep effect"},
			string(CategoryReactive):      {"Celiac disease", "Inflammatory bowel disease"},
			string(CategoryInfection):     {"Viral gastroenteritis", "Bacterial dysentery", "Parasitic infection"},
			string(CategoryCongenital):    {"Cystic fibrosis (pancreatic insufficiency)", "Colon cancer"},
		},
	},
	{
		Name: "Rash",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"Uremic pruritus", "Diabetic dermopathy"},
			string(CategoryEnvironmental): {"Contact dermatitis", "Sunburn"},
			string(CategoryTechnique):     {"Drug eruption (e.g., penicillin)", "Adhesive allergy post-procedure"},
			string(CategoryReactive):      {"Psoriasis", "Atopic dermatitis"},
			string(CategoryInfection):     {"Varicella", "Cellulitis", "Impetigo"},
			string(CategoryCongenital):    {"Neurofibromatosis", "Cutaneous T-cell lymphoma"},
		},
	},
	{
		Name: "Fatigue",
		Causes: map[string][]string{
			string(CategoryMetabolic):     {"Hypothyroidism", "Anemia", "Adrenal insufficiency"},
			string(CategoryEnvironmental): {"Sleep deprivation", "Shift work", "Depression"},
			string(CategoryTechnique):     {"Beta-blockers", "Post-surgical recovery"},
			string(CategoryReactive):      {"Rheumatoid arthritis", "SLE"},
			string(CategoryInfection):     {"Mononucleosis", "Chronic infections"},
			string(CategoryCongenital):    {"Congenital heart disease", "Cancer"},
		},
	},
}

// DefaultKnowledgeBase returns the built-in table shipped with the tool.
func DefaultKnowledgeBase() *KnowledgeBase {
	kb, err := NewKnowledgeBase(defaultEntries)
	if err != nil {
		panic("sieve: invalid built-in knowledge base: " + err.Error())
	}
	return kb
}
