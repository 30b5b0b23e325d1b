// ABOUTME: Static education guide content served by /api/education/guides
// ABOUTME: Fixed reference data, no authentication required

package models

// EducationGuide is a public article about e-waste handling
type EducationGuide struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FullContent string `json:"full_content"`
}

// EducationGuides returns the fixed guide list.
func EducationGuides() []EducationGuide {
	return []EducationGuide{
		{
			ID:          1,
			Title:       "The Hidden Dangers of E-Waste",
			Description: "Learn about the hazardous materials present in electronic waste and their environmental impact.",
			FullContent: "Electronic waste contains toxic materials like lead, mercury, cadmium, and beryllium. When disposed of improperly in landfills, these substances can leach into the soil and groundwater, contaminating our ecosystems and posing severe health risks to humans and wildlife.",
		},
		{
			ID:          2,
			Title:       "How to Prepare Your Devices for Recycling",
			Description: "Step-by-step guide on data wiping and preparing your electronics for safe disposal.",
			FullContent: "Before recycling, it's crucial to protect your personal data. For smartphones and computers, perform a factory reset or securely wipe your hard drive. Remove all personal accounts, SIM cards, and memory cards.",
		},
		{
			ID:          3,
			Title:       "The Benefits of E-Waste Recycling",
			Description: "Discover how recycling electronics conserves resources and reduces pollution.",
			FullContent: "Recycling e-waste is vital for environmental sustainability. It helps recover valuable materials like gold, silver, copper, and platinum, reducing the need for new mining and conserving natural resources.",
		},
		{
			ID:          4,
			Title:       "DIY: Extend Your Device's Lifespan",
			Description: "Simple tips and tricks to maintain and prolong the life of your electronic gadgets.",
			FullContent: "Extending the life of your electronic devices is a great way to reduce e-waste. Simple steps include using protective cases, avoiding extreme temperatures, and keeping software updated.",
		},
	}
}
