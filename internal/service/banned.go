package service

import "github.com/skalski/macroquest/internal/model"

// bannedCatalog lists additives restricted or banned in the EU but
// still common on US labels. Names and aliases are matched
// case-insensitively as substrings against label tokens.
var bannedCatalog = []model.BannedIngredient{
	{
		Name:     "Red 40",
		Aliases:  []string{"allura red", "e129", "red dye 40", "fd&c red no. 40"},
		Risk:     "Linked to hyperactivity in children; requires a warning label in the EU",
		EUStatus: "Warning label required",
		Category: "artificial color",
	},
	{
		Name:     "Yellow 5",
		Aliases:  []string{"tartrazine", "e102", "fd&c yellow no. 5"},
		Risk:     "Hyperactivity and allergic reactions",
		EUStatus: "Warning label required",
		Category: "artificial color",
	},
	{
		Name:     "Yellow 6",
		Aliases:  []string{"sunset yellow", "e110", "fd&c yellow no. 6"},
		Risk:     "Hyperactivity; possible adrenal tumors in animal studies",
		EUStatus: "Warning label required",
		Category: "artificial color",
	},
	{
		Name:     "Red 3",
		Aliases:  []string{"erythrosine", "e127", "fd&c red no. 3"},
		Risk:     "Thyroid tumors in animal studies",
		EUStatus: "Banned in most uses",
		Category: "artificial color",
	},
	{
		Name:     "Blue 1",
		Aliases:  []string{"brilliant blue", "e133", "fd&c blue no. 1"},
		Risk:     "Possible allergen; discouraged for children",
		EUStatus: "Warning label in some member states",
		Category: "artificial color",
	},
	{
		Name:     "Titanium Dioxide",
		Aliases:  []string{"e171", "tio2"},
		Risk:     "Possible genotoxicity; EFSA no longer considers it safe as a food additive",
		EUStatus: "Banned since 2022",
		Category: "whitening agent",
	},
	{
		Name:     "Potassium Bromate",
		Aliases:  []string{"bromated flour", "e924"},
		Risk:     "Possible human carcinogen",
		EUStatus: "Banned",
		Category: "dough conditioner",
	},
	{
		Name:     "Brominated Vegetable Oil",
		Aliases:  []string{"bvo"},
		Risk:     "Bromine accumulation; thyroid effects",
		EUStatus: "Banned",
		Category: "emulsifier",
	},
	{
		Name:     "Azodicarbonamide",
		Aliases:  []string{"e927a"},
		Risk:     "Respiratory sensitizer; breaks down into semicarbazide",
		EUStatus: "Banned",
		Category: "dough conditioner",
	},
	{
		Name:     "BHA",
		Aliases:  []string{"butylated hydroxyanisole", "e320"},
		Risk:     "Possible human carcinogen",
		EUStatus: "Restricted",
		Category: "preservative",
	},
	{
		Name:     "BHT",
		Aliases:  []string{"butylated hydroxytoluene", "e321"},
		Risk:     "Tumor promotion in animal studies",
		EUStatus: "Restricted",
		Category: "preservative",
	},
	{
		Name:     "Propylparaben",
		Aliases:  []string{"propyl paraben", "e216"},
		Risk:     "Endocrine disruption",
		EUStatus: "Banned as a food additive",
		Category: "preservative",
	},
	{
		Name:     "Olestra",
		Aliases:  []string{"olean"},
		Risk:     "Gastrointestinal effects; depletes fat-soluble vitamins",
		EUStatus: "Not approved",
		Category: "fat substitute",
	},
	{
		Name:     "rBGH",
		Aliases:  []string{"rbst", "recombinant bovine growth hormone", "bovine somatotropin"},
		Risk:     "Elevated IGF-1 in milk",
		EUStatus: "Banned",
		Category: "hormone",
	},
}

// BannedCatalog returns the static banned-ingredient reference list.
func BannedCatalog() []model.BannedIngredient {
	out := make([]model.BannedIngredient, len(bannedCatalog))
	copy(out, bannedCatalog)
	return out
}
