package ingestion

const samplesPerRecord = 2

var Diseases = []string{
	"Hypertension",
	"Diabetes",
	"Asthma",
	"Cancer",
	"Heart Disease",
	"Chronic Obstructive Pulmonary Disease (COPD)",
	"Arthritis",
	"Stroke",
	"Kidney Disease",
	"Alzheimer's Disease",
	"Obesity",
	"Liver Disease",
}

var Allergies = []string{
	"Penicillin",
	"Peanuts",
	"Shellfish",
	"Pollen",
	"Dust Mites",
	"Insect Stings",
	"Latex",
	"Mold",
	"Pet Dander",
	"Food Additives",
	"Eggs",
	"Milk",
	"Soy",
	"Wheat",
}
