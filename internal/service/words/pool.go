package words

import "github.com/heartmarshall/grammar-assistant/internal/domain"

// pool is the fixed vocabulary list Daily samples from.
var pool = []domain.WordEntry{
	{
		Term:       "Cacophony",
		Definition: "A harsh, discordant mixture of sounds.",
		Example:    "The cacophony of honking horns filled the street.",
		Relevance:  "Impressive for descriptive writing.",
		Tip:        "Great for painting vivid scenes in writing.",
	},
	{
		Term:       "Ambiguous",
		Definition: "Open to more than one interpretation.",
		Example:    "Her reply was ambiguous, leaving everyone confused.",
		Relevance:  "Useful in argumentative writing.",
		Tip:        "Use when discussing unclear statements or ideas.",
	},
	{
		Term:       "Ubiquitous",
		Definition: "Present, appearing, or found everywhere.",
		Example:    "Smartphones are ubiquitous in today’s society.",
		Relevance:  "Common in academic writing.",
		Tip:        "Use to describe something widespread.",
	},
	{
		Term:       "Eloquent",
		Definition: "Fluent or persuasive in speaking or writing.",
		Example:    "Her eloquent speech moved the entire audience.",
		Relevance:  "Useful for essays and speaking sections.",
		Tip:        "Use when praising strong communication skills.",
	},
	{
		Term:       "Inevitable",
		Definition: "Certain to happen; unavoidable.",
		Example:    "With such bad weather, cancellation was inevitable.",
		Relevance:  "Great for cause-effect essays.",
		Tip:        "Use to describe unavoidable outcomes.",
	},
	{
		Term:       "Ephemeral",
		Definition: "Lasting for a very short time.",
		Example:    "Fame can be ephemeral in the digital age.",
		Relevance:  "Impressive for abstract topics.",
		Tip:        "Use to discuss fleeting trends.",
	},
	{
		Term:       "Meticulous",
		Definition: "Showing great attention to detail.",
		Example:    "She kept meticulous records of her experiments.",
		Relevance:  "Useful in science and academic essays.",
		Tip:        "Use when describing perfectionism or care.",
	},
	{
		Term:       "Resilient",
		Definition: "Able to recover quickly from difficulties.",
		Example:    "Children are often more resilient than adults expect.",
		Relevance:  "Great for personal or motivational writing.",
		Tip:        "Use in discussions of adversity and strength.",
	},
	{
		Term:       "Imminent",
		Definition: "About to happen.",
		Example:    "A storm is imminent, so take shelter.",
		Relevance:  "Useful in weather, politics, or risk topics.",
		Tip:        "Use to create urgency.",
	},
	{
		Term:       "Scrutinize",
		Definition: "To examine very closely.",
		Example:    "The committee will scrutinize the report before approval.",
		Relevance:  "Useful in academic and legal contexts.",
		Tip:        "Use when describing careful inspection.",
	},
	{
		Term:       "Pragmatic",
		Definition: "Dealing with things sensibly and realistically.",
		Example:    "We need a pragmatic approach to solve this issue.",
		Relevance:  "Useful in problem-solving contexts.",
		Tip:        "Use to contrast idealistic viewpoints.",
	},
	{
		Term:       "Juxtapose",
		Definition: "To place side by side for comparison.",
		Example:    "The author juxtaposes war and peace throughout the novel.",
		Relevance:  "Common in literary analysis.",
		Tip:        "Use when comparing ideas or imagery.",
	},
	{
		Term:       "Obsolete",
		Definition: "No longer in use.",
		Example:    "CDs have become obsolete with the rise of streaming.",
		Relevance:  "Useful in technology topics.",
		Tip:        "Use to describe outdated items.",
	},
	{
		Term:       "Alleviate",
		Definition: "To relieve or reduce pain or burden.",
		Example:    "New policies aim to alleviate poverty.",
		Relevance:  "Useful in health or policy writing.",
		Tip:        "Use when discussing solutions.",
	},
	{
		Term:       "Conundrum",
		Definition: "A confusing or difficult problem.",
		Example:    "Choosing between two jobs is a real conundrum.",
		Relevance:  "Good for argument or dilemma essays.",
		Tip:        "Use to show complex issues.",
	},
	{
		Term:       "Aesthetic",
		Definition: "Concerned with beauty or artistic impact.",
		Example:    "The building has great aesthetic appeal.",
		Relevance:  "Useful in design, culture, and art topics.",
		Tip:        "Use to praise visual design.",
	},
	{
		Term:       "Prolific",
		Definition: "Producing a large amount of something.",
		Example:    "Shakespeare was a prolific playwright.",
		Relevance:  "Useful in literature or data essays.",
		Tip:        "Use to describe quantity and creativity.",
	},
	{
		Term:       "Tedious",
		Definition: "Too long, slow, or dull; tiresome.",
		Example:    "The process of applying was tedious but necessary.",
		Relevance:  "Good for describing challenges.",
		Tip:        "Use to describe repetitive tasks.",
	},
	{
		Term:       "Cohesive",
		Definition: "Well integrated and unified.",
		Example:    "Her essay was well-organized and cohesive.",
		Relevance:  "Useful for writing evaluation.",
		Tip:        "Use when judging structure or flow.",
	},
	{
		Term:       "Exacerbate",
		Definition: "To make a problem worse.",
		Example:    "Pollution exacerbates climate change.",
		Relevance:  "Strong for cause-effect essays.",
		Tip:        "Use for negative escalation.",
	},
	{
		Term:       "Diligent",
		Definition: "Hard-working and careful.",
		Example:    "He is diligent in his studies.",
		Relevance:  "Common in work or education topics.",
		Tip:        "Use to describe a good habit.",
	},
	{
		Term:       "Vulnerable",
		Definition: "Easily affected or hurt.",
		Example:    "Elderly people are vulnerable to illness.",
		Relevance:  "Useful in health and society topics.",
		Tip:        "Use when discussing risks or protection.",
	},
	{
		Term:       "Benevolent",
		Definition: "Kind and generous.",
		Example:    "The organization is known for its benevolent work.",
		Relevance:  "Useful in describing character.",
		Tip:        "Use when discussing philanthropy.",
	},
	{
		Term:       "Intricate",
		Definition: "Very detailed and complicated.",
		Example:    "The design of the sculpture is intricate.",
		Relevance:  "Useful in art and science essays.",
		Tip:        "Use to describe complexity.",
	},
	{
		Term:       "Hypothetical",
		Definition: "Based on a theory or assumption.",
		Example:    "This is a hypothetical situation, not real.",
		Relevance:  "Common in examples and reasoning.",
		Tip:        "Use to introduce imagined cases.",
	},
	{
		Term:       "Ameliorate",
		Definition: "To improve or make better.",
		Example:    "Efforts were made to ameliorate living conditions.",
		Relevance:  "Good for discussing solutions.",
		Tip:        "Use in formal improvement contexts.",
	},
	{
		Term:       "Plausible",
		Definition: "Seeming reasonable or probable.",
		Example:    "Her excuse was plausible, though not certain.",
		Relevance:  "Useful in reasoning or argument.",
		Tip:        "Use to describe believable claims.",
	},
	{
		Term:       "Indigenous",
		Definition: "Originating or occurring naturally in a region.",
		Example:    "These plants are indigenous to South America.",
		Relevance:  "Useful in environmental and cultural topics.",
		Tip:        "Use when discussing native populations or ecosystems.",
	},
	{
		Term:       "Ostentatious",
		Definition: "Showy and intended to impress.",
		Example:    "His ostentatious lifestyle drew criticism.",
		Relevance:  "Great for tone or character description.",
		Tip:        "Use when describing excessive behavior.",
	},
	{
		Term:       "Candid",
		Definition: "Truthful and straightforward.",
		Example:    "He gave a candid account of the incident.",
		Relevance:  "Useful in interviews and honesty contexts.",
		Tip:        "Use when describing openness or sincerity.",
	},
}
