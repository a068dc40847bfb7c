package rules

// Rule tables, keyed by lowercased specialty. Rules are scanned in order and
// the first keyword hit wins, so more specific rules must come first.
var tables = map[string]specialtyTable{
	"cardiology": {
		greeting: "Hello, I'm your cardiologist. How is your heart treating you today?",
		closing:  "You're welcome. Take care of your heart, and don't hesitate to reach out again.",
		conditions: []string{
			"chest pain", "hypertension", "palpitations", "high cholesterol",
		},
		rules: []rule{
			{
				keywords: []string{"chest pain", "chest tightness", "chest pressure"},
				response: "Chest pain should always be taken seriously. If it is severe, radiating to your arm or jaw, or comes with shortness of breath, please seek emergency care immediately. If it is mild and brief, let's review when it occurs: at rest, during exertion, or after meals?",
			},
			{
				keywords: []string{"palpitation", "racing", "skipped beat", "irregular"},
				response: "Palpitations are often benign, but I'd like to know more. Do they happen at rest or with caffeine, stress, or exercise? A brief ECG can usually clarify things.",
			},
			{
				keywords: []string{"blood pressure", "hypertension"},
				response: "Keeping blood pressure controlled matters a lot. Please measure it twice daily for a week, seated and rested, and note the readings so we can review them together.",
			},
			{
				keywords: []string{"cholesterol", "lipid"},
				response: "Cholesterol management combines diet, activity, and sometimes medication. When was your last lipid panel? If it's been over a year, we should repeat it.",
			},
			{
				keywords: []string{"short of breath", "breathless", "dyspnea"},
				response: "Shortness of breath can have cardiac causes. Does it occur when lying flat, climbing stairs, or at rest? Any ankle swelling?",
			},
		},
	},
	"gastroenterologist": {
		greeting: "Hello, I'm your gastroenterologist. What digestive troubles bring you in today?",
		closing:  "Glad to help. Be kind to your stomach, and come back if anything changes.",
		conditions: []string{
			"acid reflux", "irritable bowel syndrome", "gastritis", "ulcers",
		},
		rules: []rule{
			{
				keywords: []string{"acid reflux", "reflux", "heartburn"},
				response: "For acid reflux, start by avoiding late meals, caffeine, and alcohol, and try elevating the head of your bed. If it occurs more than twice a week despite that, we should consider an acid-suppressing medication and possibly an endoscopy.",
			},
			{
				keywords: []string{"stomach pain", "abdominal pain", "belly"},
				response: "Abdominal pain has many causes. Where exactly is the pain, and is it related to meals? Any nausea, vomiting, or change in bowel habits?",
			},
			{
				keywords: []string{"bloating", "gas", "constipat", "diarrhea"},
				response: "Changes in bowel habit and bloating often respond to diet adjustments. Keep a food diary for a week; dairy and high-FODMAP foods are common triggers.",
			},
			{
				keywords: []string{"blood", "black stool", "tarry"},
				response: "Any sign of blood in the stool needs prompt evaluation. Please arrange an in-person visit as soon as possible so we can examine this properly.",
			},
			{
				keywords: []string{"nausea", "vomit"},
				response: "Persistent nausea deserves attention. How long has it lasted, and can you keep fluids down? If you cannot, please seek care today.",
			},
		},
	},
	"dermatology": {
		greeting: "Hello, I'm your dermatologist. What skin concern can I look at today?",
		closing:  "You're welcome. Keep using sunscreen, and reach out if the skin changes.",
		conditions: []string{
			"acne", "eczema", "psoriasis", "suspicious moles",
		},
		rules: []rule{
			{
				keywords: []string{"mole", "spot changed", "dark spot"},
				response: "A changing mole should be examined in person. Watch for asymmetry, irregular borders, multiple colors, diameter over 6mm, or evolution. Please book a skin check.",
			},
			{
				keywords: []string{"acne", "pimple", "breakout"},
				response: "For acne, a gentle cleanser twice daily plus a benzoyl peroxide or adapalene product is a good start. Give any regimen six to eight weeks before judging it.",
			},
			{
				keywords: []string{"itch", "eczema", "dry skin"},
				response: "Itchy, dry skin usually improves with fragrance-free moisturizers applied right after bathing. If there are red, weeping patches, a short course of topical steroid may help.",
			},
			{
				keywords: []string{"rash", "hives"},
				response: "Rashes are hard to judge without seeing them. Is it spreading, painful, or accompanied by fever? A photo through the clinic portal would help me advise you.",
			},
		},
	},
	"neurology": {
		greeting: "Hello, I'm your neurologist. What symptoms have you been noticing?",
		closing:  "Happy to help. Note down any new episodes and we'll review them next time.",
		conditions: []string{
			"migraines", "neuropathy", "dizziness", "seizure disorders",
		},
		rules: []rule{
			{
				keywords: []string{"headache", "migraine"},
				response: "For recurring headaches, keep a diary of timing, triggers, and severity. Sudden, worst-ever headaches are emergencies; otherwise let's review the pattern and discuss preventive options.",
			},
			{
				keywords: []string{"numb", "tingling", "pins and needles"},
				response: "Numbness or tingling can come from nerves in the limbs or the spine. Which areas are affected, and is it constant or intermittent?",
			},
			{
				keywords: []string{"dizzy", "vertigo", "balance"},
				response: "Dizziness splits into lightheadedness and spinning vertigo, and the distinction matters. Which does yours feel like, and does position change trigger it?",
			},
			{
				keywords: []string{"seizure", "blackout", "fainted"},
				response: "Any loss of consciousness needs careful evaluation. Was there a warning beforehand, and did anyone witness the episode? Please avoid driving until we've spoken.",
			},
		},
	},
	"pediatrics": {
		greeting: "Hello, I'm your pediatrician. How is your little one doing today?",
		closing:  "You're welcome. Kids bounce back fast; call again if anything worries you.",
		conditions: []string{
			"fevers", "ear infections", "feeding issues", "routine checkups",
		},
		rules: []rule{
			{
				keywords: []string{"fever", "temperature"},
				response: "For a child's fever, the number matters less than how they behave. If your child is under three months, or listless, or the fever lasts over three days, see a doctor promptly. Otherwise fluids, rest, and weight-based paracetamol are fine.",
			},
			{
				keywords: []string{"ear", "pulling"},
				response: "Ear pain after a cold often means an ear infection. Many clear on their own within 48 hours; pain relief helps meanwhile. If there's discharge or high fever, come in for a look.",
			},
			{
				keywords: []string{"eat", "feeding", "appetite"},
				response: "Appetite dips are common in growing children. Is your child drinking well and gaining weight? If both, watchful waiting is usually fine.",
			},
			{
				keywords: []string{"cough", "cold", "runny nose"},
				response: "Most childhood coughs are viral and settle in one to two weeks. Honey (over age one), fluids, and humidified air help. Labored breathing or ribs pulling in means see a doctor now.",
			},
		},
	},
	"general practitioner": {
		greeting: "Hello, I'm your general practitioner. What can I help you with today?",
		closing:  "You're welcome. Look after yourself, and book a checkup if it's been a while.",
		conditions: []string{
			"colds and flu", "minor infections", "chronic condition reviews", "preventive care",
		},
		rules: []rule{
			{
				keywords: []string{"cold", "flu", "cough", "sore throat"},
				response: "Sounds like an upper respiratory infection. Rest, fluids, and paracetamol usually see it off within a week. If symptoms worsen after day five or you have trouble breathing, come in.",
			},
			{
				keywords: []string{"tired", "fatigue", "exhausted"},
				response: "Persistent fatigue has many causes, from sleep and stress to anemia or thyroid issues. How long has it lasted? Basic blood work would be a sensible first step.",
			},
			{
				keywords: []string{"checkup", "check-up", "physical"},
				response: "A routine checkup is a great idea. We'll review blood pressure, weight, vaccinations, and any screening tests due for your age. Shall I note anything specific you want covered?",
			},
			{
				keywords: []string{"pain"},
				response: "Let's pin that pain down: where is it, how long has it been there, and what makes it better or worse?",
			},
		},
	},
}
