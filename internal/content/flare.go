// ABOUTME: Flare-up protocol reference for severe symptom days.
// ABOUTME: Activation criteria, dietary staging, and lifestyle steps.
package content

// FlareProtocol is the emergency management guide for severe symptoms.
type FlareProtocol struct {
	Activation []string
	Allowed    []string
	Prohibited []string
	Lifestyle  []FlareStep
	Outcome    string
}

// FlareStep is one numbered activity modification in the protocol.
type FlareStep struct {
	Title  string
	Detail string
}

// DefaultFlareProtocol is the built-in flare-up protocol.
var DefaultFlareProtocol = FlareProtocol{
	Activation: []string{
		"Vomiting has occurred within the last 24 hours.",
		"Nausea severity is consistently above 7/10.",
		"Unable to tolerate solid foods without significant pain.",
		"Feeling full after only a few bites of food.",
	},
	Allowed: []string{
		"Clear Broths (Chicken/Beef/Bone)",
		"Electrolyte Drinks (Pedialyte/Gatorade)",
		"Jell-O (No fruit pieces)",
		"Pureed Soups (No chunks)",
		"Nutritional Shakes (Ensure/Boost)",
		"Crackers/Toast (If tolerated, chewed well)",
	},
	Prohibited: []string{
		"All Raw Vegetables & Fruits",
		"All Solid Meats (Steak, Chicken Breast)",
		"High Fiber (Oatmeal, Whole Grains)",
		"Dairy (if lactose aggravates bloating)",
		"Carbonated Beverages",
	},
	Lifestyle: []FlareStep{
		{
			Title:  "Hydration is Priority #1",
			Detail: "Sip fluids continuously. Aim for 125ml (1/2 cup) every hour rather than gulping large amounts.",
		},
		{
			Title:  "Strict Vertical Rest",
			Detail: "Do not lie flat for at least 2 hours after any intake. Sleep with your head elevated on wedges or pillows.",
		},
		{
			Title:  "Bowel Management",
			Detail: "Ensure you are still passing stool. If constipated, hydration and doctor-approved softeners are critical as constipation worsens nausea.",
		},
	},
	Outcome: `The goal of this protocol is to give the stomach muscles "mechanical rest". By removing solids, gravity empties the stomach without requiring strong contractions. Most patients see a reduction in nausea within 24-48 hours. If vomiting persists beyond 48 hours despite this protocol, seek medical attention.`,
}
