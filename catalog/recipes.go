package catalog

import "recipe-pipeline/domain"

// authored returns the full recipe records, in publish order. Step numbers
// are contiguous from 1 and every recipe carries at least one source.
func authored() []domain.RecipeContent {
	return []domain.RecipeContent{
		{
			Slug:        "crispy-pork-belly",
			Title:       "Crispy Roast Pork Belly",
			Description: "Cantonese-style siu yuk with shatteringly crisp crackling over juicy, well-seasoned meat.",
			Introduction: "Siu yuk is the benchmark of a good Cantonese roast shop. The version below " +
				"gets restaurant-grade crackling out of a home oven by drying the skin overnight " +
				"and finishing under high heat.",
			WhyLoveIt: "• **Shattering crackling** – The salt crust and overnight dry-out give glass-crisp skin\n" +
				"• **Juicy meat** – Five-spice and a slow first roast keep the belly moist\n" +
				"• **No special gear** – A regular oven and a wire rack are all it takes",
			PrepTimeMinutes: 30,
			CookTimeMinutes: 90,
			Servings:        6,
			Difficulty:      domain.DifficultyMedium,
			Ingredients: []domain.Ingredient{
				{Item: "pork belly", Quantity: "1.2", Unit: "kg", Notes: "skin on, one even slab"},
				{Item: "five-spice powder", Quantity: "2", Unit: "tsp"},
				{Item: "white pepper", Quantity: "1", Unit: "tsp"},
				{Item: "shaoxing wine", Quantity: "1", Unit: "tbsp"},
				{Item: "fine salt", Quantity: "1", Unit: "tbsp"},
				{Item: "coarse rock salt", Quantity: "300", Unit: "g", Section: "For the salt crust"},
				{Item: "white vinegar", Quantity: "1", Unit: "tbsp", Section: "For the salt crust"},
			},
			Instructions: []domain.InstructionStep{
				{Step: 1, Text: "Pat the pork belly dry and prick the skin all over with a skewer without piercing into the fat.", TimeMinutes: 10, Tip: "The more holes, the better the crackling.", ImageHint: "hands pricking the skin of a pork belly slab with skewers on a wooden board"},
				{Step: 2, Text: "Flip the belly and rub the meat side with five-spice, white pepper, salt and shaoxing wine. Keep the skin dry.", TimeMinutes: 5, ImageHint: "seasoning being rubbed into the meat side of a pork belly"},
				{Step: 3, Text: "Refrigerate uncovered overnight, skin side up, so the skin dries out completely.", TimeMinutes: 720, ImageHint: "pork belly resting uncovered on a rack inside a refrigerator"},
				{Step: 4, Text: "Brush the skin with vinegar, pack the rock salt into an even crust on top, and roast at 180°C for 60 minutes.", TimeMinutes: 60, ImageHint: "pork belly with a white salt crust going into an oven"},
				{Step: 5, Text: "Remove the salt crust, switch to the top grill at 240°C and blister the skin until evenly puffed, 15 to 20 minutes.", TimeMinutes: 20, Tip: "Rotate the tray so the skin blisters evenly without scorching.", ImageHint: "golden blistered pork crackling under a grill element"},
				{Step: 6, Text: "Rest for 15 minutes, then cut into bite-size pieces with a heavy knife through the crackling.", TimeMinutes: 15, ImageHint: "cleaver cutting crispy pork belly into cubes on a chopping board"},
			},
			Equipment: []string{"wire rack", "roasting tray", "skewer", "heavy knife"},
			Substitutions: []domain.Substitution{
				{Original: "shaoxing wine", Replacement: "dry sherry", Notes: "closest widely available match"},
				{Original: "five-spice powder", Replacement: "ground star anise + cinnamon", Notes: "use half the amount of each"},
			},
			Nutrition: domain.Nutrition{Calories: "610 kcal", Protein: "32 g", Carbs: "1 g", Fat: "53 g"},
			Tips: domain.Tips{
				Doneness:       []string{"The skin should sound hollow when tapped with a knife."},
				Storage:        []string{"Keeps 3 days refrigerated; re-crisp skin side down in a dry pan."},
				ProTips:        []string{"Score the fat layer lightly before roasting for easier carving."},
				CommonMistakes: []string{"Letting marinade touch the skin, which stops it from crisping."},
			},
			FAQ: []domain.FAQItem{
				{Question: "Can I skip the overnight drying?", Answer: "You can, but the crackling will be chewy rather than crisp. Even 4 hours in front of a fan helps."},
				{Question: "Why a salt crust?", Answer: "It insulates the skin during the slow roast so it dehydrates instead of rendering too early."},
			},
			Sources: []domain.Source{
				{Title: "The Woks of Life – Cantonese Roast Pork Belly", URL: "https://thewoksoflife.com/cantonese-roast-pork-belly/"},
				{Title: "Made With Lau – Siu Yuk", URL: "https://www.madewithlau.com/recipes/roasted-pork-belly"},
			},
		},
		{
			Slug:        "thai-basil-chicken",
			Title:       "Thai Basil Chicken (Pad Krapow Gai)",
			Description: "The street-stall standard: hot wok, ground chicken, holy basil, done in ten minutes.",
			Introduction: "Pad krapow gai is what Thai cooks make when nobody can decide what to eat. " +
				"It needs more heat than most home burners give, so the recipe works in two small " +
				"batches to keep the wok screaming hot.",
			WhyLoveIt: "• **Ten-minute dinner** – Faster than delivery once the rice is on\n" +
				"• **Big basil flavor** – A full two cups wilted in at the end\n" +
				"• **One-pan cleanup** – Everything happens in the wok",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 10,
			Servings:        2,
			Difficulty:      domain.DifficultyEasy,
			Ingredients: []domain.Ingredient{
				{Item: "ground chicken", Quantity: "400", Unit: "g"},
				{Item: "thai bird's eye chilies", Quantity: "4", Notes: "fewer for less heat"},
				{Item: "garlic cloves", Quantity: "5"},
				{Item: "holy basil leaves", Quantity: "2", Unit: "cups", Notes: "thai sweet basil works too"},
				{Item: "neutral oil", Quantity: "2", Unit: "tbsp"},
				{Item: "oyster sauce", Quantity: "1", Unit: "tbsp", Section: "For the sauce"},
				{Item: "fish sauce", Quantity: "1", Unit: "tbsp", Section: "For the sauce"},
				{Item: "dark soy sauce", Quantity: "1", Unit: "tsp", Section: "For the sauce"},
				{Item: "sugar", Quantity: "1", Unit: "tsp", Section: "For the sauce"},
				{Item: "eggs", Quantity: "2", Section: "To serve", Notes: "for frying"},
				{Item: "jasmine rice", Quantity: "2", Unit: "cups", Section: "To serve", Notes: "cooked"},
			},
			Instructions: []domain.InstructionStep{
				{Step: 1, Text: "Pound the chilies and garlic into a rough paste with a mortar and pestle.", TimeMinutes: 3, ImageHint: "granite mortar and pestle crushing red chilies and garlic"},
				{Step: 2, Text: "Stir the oyster sauce, fish sauce, dark soy and sugar together in a small bowl.", TimeMinutes: 2, ImageHint: "small bowl of dark stir-fry sauce being whisked"},
				{Step: 3, Text: "Heat the oil in a wok until smoking, fry the chili-garlic paste for 15 seconds, then add the chicken and spread it flat.", TimeMinutes: 2, Tip: "Let the chicken sear untouched before breaking it up.", ImageHint: "ground chicken hitting a smoking hot wok with chili paste"},
				{Step: 4, Text: "Break the chicken up, pour in the sauce and toss until the liquid has nearly cooked off.", TimeMinutes: 3, ImageHint: "wok tossing glossy sauced ground chicken"},
				{Step: 5, Text: "Kill the heat, fold in the basil until just wilted, and serve over rice with a crispy fried egg.", TimeMinutes: 2, Tip: "The egg white should bubble and crisp at the edges.", ImageHint: "plate of basil chicken over rice topped with a crispy fried egg"},
			},
			Equipment: []string{"wok", "mortar and pestle"},
			Substitutions: []domain.Substitution{
				{Original: "holy basil", Replacement: "thai sweet basil", Notes: "milder, still good"},
				{Original: "ground chicken", Replacement: "ground pork", Notes: "the original street version"},
			},
			Nutrition: domain.Nutrition{Calories: "520 kcal", Protein: "41 g", Carbs: "38 g", Fat: "22 g"},
			Tips: domain.Tips{
				Doneness:       []string{"The sauce should coat the meat with almost no liquid pooling."},
				Storage:        []string{"Best eaten fresh; basil blackens after a day in the fridge."},
				ProTips:        []string{"Cook in two batches if your burner is weak, or the chicken stews."},
				CommonMistakes: []string{"Adding basil over heat and cooking it to a dark, bitter wilt."},
			},
			FAQ: []domain.FAQItem{
				{Question: "Is holy basil the same as thai basil?", Answer: "No. Holy basil (krapow) is peppery and sharper. Thai sweet basil has anise notes and is the usual substitute abroad."},
			},
			Sources: []domain.Source{
				{Title: "Hot Thai Kitchen – Pad Krapow", URL: "https://hot-thai-kitchen.com/pad-gaprao/"},
			},
		},
		{
			Slug:        "garlic-butter-naan",
			Title:       "Garlic Butter Naan",
			Description: "Blistered stovetop naan brushed with garlic butter, no tandoor required.",
			Introduction: "A cast-iron pan flipped over a gas flame mimics a tandoor wall closely " +
				"enough to blister and char the dough the right way. The yogurt keeps the crumb " +
				"tender even after cooling.",
			WhyLoveIt: "• **Real blisters** – High direct heat chars the bubbles like a tandoor\n" +
				"• **Tender crumb** – Yogurt and a soft dough keep it pillowy\n" +
				"• **Freezer friendly** – Parcooked naan revives perfectly in a hot pan",
			PrepTimeMinutes: 20,
			CookTimeMinutes: 20,
			Servings:        8,
			Difficulty:      domain.DifficultyMedium,
			Ingredients: []domain.Ingredient{
				{Item: "bread flour", Quantity: "500", Unit: "g", Section: "For the dough"},
				{Item: "instant yeast", Quantity: "7", Unit: "g", Section: "For the dough"},
				{Item: "plain yogurt", Quantity: "150", Unit: "g", Section: "For the dough"},
				{Item: "warm water", Quantity: "220", Unit: "ml", Section: "For the dough"},
				{Item: "sugar", Quantity: "1", Unit: "tbsp", Section: "For the dough"},
				{Item: "salt", Quantity: "1.5", Unit: "tsp", Section: "For the dough"},
				{Item: "butter", Quantity: "80", Unit: "g", Section: "For the garlic butter"},
				{Item: "garlic cloves", Quantity: "4", Notes: "finely grated", Section: "For the garlic butter"},
				{Item: "cilantro", Quantity: "2", Unit: "tbsp", Notes: "chopped", Section: "For the garlic butter"},
			},
			Instructions: []domain.InstructionStep{
				{Step: 1, Text: "Knead the flour, yeast, sugar, salt, yogurt and water into a soft, slightly tacky dough, about 8 minutes.", TimeMinutes: 10, ImageHint: "soft dough being kneaded on a floured counter"},
				{Step: 2, Text: "Cover and proof until doubled, 60 to 90 minutes.", TimeMinutes: 90, ImageHint: "dough rising in a glass bowl covered with a cloth"},
				{Step: 3, Text: "Divide into 8 balls and roll each into an oval about 3 mm thick.", TimeMinutes: 10, Tip: "Stretch one end for the classic teardrop shape.", ImageHint: "rolling pin shaping teardrop naan ovals"},
				{Step: 4, Text: "Wet one side of the dough, slap it wet side down into a screaming hot cast-iron pan, and cook until big bubbles form.", TimeMinutes: 2, ImageHint: "naan bubbling dramatically in a black cast-iron pan"},
				{Step: 5, Text: "Flip the pan upside down over the flame to char the bubbles, then brush the naan with the garlic butter and shower with cilantro.", TimeMinutes: 2, Tip: "Electric stove: finish under the broiler instead.", ImageHint: "charred naan being brushed with melted garlic butter"},
			},
			Equipment: []string{"cast-iron pan", "rolling pin", "pastry brush"},
			Substitutions: []domain.Substitution{
				{Original: "bread flour", Replacement: "all-purpose flour", Notes: "slightly less chew"},
				{Original: "plain yogurt", Replacement: "milk + 1 tsp lemon juice", Notes: "rest 5 minutes before using"},
			},
			Nutrition: domain.Nutrition{Calories: "290 kcal", Protein: "8 g", Carbs: "46 g", Fat: "9 g"},
			Tips: domain.Tips{
				Doneness:       []string{"Bubbles should be deeply browned, not just golden."},
				Storage:        []string{"Freeze parcooked rounds between parchment; finish from frozen."},
				ProTips:        []string{"The wet side is what makes the naan stick to the pan for the flip."},
				CommonMistakes: []string{"A pan that is not hot enough, which gives dense, dry naan."},
			},
			FAQ: []domain.FAQItem{
				{Question: "Can I make the dough ahead?", Answer: "Yes, it improves overnight in the fridge. Bring to room temperature for 30 minutes before rolling."},
			},
			Sources: []domain.Source{
				{Title: "RecipeTin Eats – Naan", URL: "https://www.recipetineats.com/naan-recipe/"},
				{Title: "Serious Eats – Stovetop Naan", URL: "https://www.seriouseats.com/grilled-naan-recipe"},
			},
		},
	}
}
