// ABOUTME: Patient education on the mechanics of gastroparesis.
// ABOUTME: Explains delayed emptying, texture rules, and the role of gravity.
package content

// EducationTopic is one section of the patient education guide.
type EducationTopic struct {
	Title  string
	Intro  string
	Points []EducationPoint
}

// EducationPoint is one headed explanation within a topic.
type EducationPoint struct {
	Heading string
	Body    string
}

// EducationTopics explains why gastroparesis behaves the way it does and
// why the dietary rules follow from that.
var EducationTopics = []EducationTopic{
	{
		Title: "The Mechanics: Why Food Stays Stuck",
		Points: []EducationPoint{
			{
				Heading: "The Vagus Nerve Problem",
				Body: "Think of the Vagus nerve as the power cord connecting your brain to " +
					"your stomach. In gastroparesis this cord is damaged (often by diabetes " +
					"or surgery), so the \"churning signal\" never arrives.",
			},
			{
				Heading: "Paralysis (Gastroparesis)",
				Body: "Without signals, the stomach muscles stop moving. Food just sits " +
					"there, relying entirely on gravity to drain out (which is why you " +
					"must stay upright!).",
			},
			{
				Heading: "Healthy vs Gastroparesis",
				Body: "A healthy stomach grinds food with strong contractions and pushes " +
					"it through an open pyloric valve. A gastroparesis stomach is " +
					"distended, its contractions weak or absent, so food collects " +
					"instead of exiting.",
			},
		},
	},
	{
		Title: "The \"Pyloric Sieve\": Why Texture Matters",
		Intro: "The pyloric valve (the exit door) normally grinds food down to 1-2mm. " +
			"In gastroparesis it doesn't grind. It acts like a stiff mesh sieve.",
		Points: []EducationPoint{
			{
				Heading: "Solid/Fiber Diet",
				Body: "Large particles (fibrous vegetables, solid meats, corn) get stuck. " +
					"They ferment (bloating) or harden into rocks (bezoars).",
			},
			{
				Heading: "\"Small Particle\" Diet",
				Body: "Liquids and purees flow through the \"sieve\" by gravity alone, " +
					"even without muscle contractions.",
			},
		},
	},
	{
		Title: "Physics Is Your Friend",
		Points: []EducationPoint{
			{
				Heading: "Gravity Does the Emptying",
				Body: "Because your stomach isn't pumping, gravity is the only force " +
					"moving food down. This is why lying down after eating is dangerous: " +
					"it turns your stomach into a flat bowl that can't drain.",
			},
		},
	},
}
