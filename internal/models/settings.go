package models

import "go.mongodb.org/mongo-driver/bson"

// SettingsID es el _id fijo del documento singleton de configuración
const SettingsID = "site"

// Category es una entrada de la lista de categorías del sitio
type Category struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// DefaultCategories devuelve la lista de categorías por defecto
func DefaultCategories() []Category {
	return []Category{
		{ID: "all", Name: "All Listings"},
		{ID: "household", Name: "Household Items"},
		{ID: "furniture", Name: "Furniture"},
		{ID: "tools", Name: "Tools & Equipment"},
		{ID: "vintage", Name: "Vintage & Collectibles"},
	}
}

// DefaultSettings devuelve una copia nueva del mapa canónico de configuración.
// Los valores que faltan en el documento almacenado se rellenan desde aquí.
func DefaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"siteTitle":   "unhinged listings",
		"subtitle":    "colorado springs > for sale / wanted > general for sale",
		"tagline":     "where mundane commerce meets existential dread",
		"description": "real items for sale, written through the lens of late-stage capitalism and fourth-wall-breaking nihilism",
		"categories":  DefaultCategories(),
		"safetyTips":  "meet in public places\ndon't wire money\navoid offers that seem too good\nbeware of existential dread",
		"footerText":  "unhinged listings | all rights reserved to question reality through commerce",
		"footerLinks": "help | safety | privacy | feedback | craigslist blog | best of craigslist | existential crisis support",
		"aboutTitle":  "About Unhinged Listings",
		"aboutIntro": "This is an ongoing performance art piece disguised as classified ads. Each listing starts as a real item " +
			"for sale from my actual home, but transforms into absurdist literature that questions the nature of consumer " +
			"culture, late-stage capitalism, and the commodification of our lives.",
		"aboutProcess": "Find real item to sell from my home\nStart writing \"normal\" classified ad\nLet nihilistic stream-of-consciousness take over\nBreak fourth wall, question existence\nPost to Facebook Marketplace as functional ad\nArchive here as art piece",
		"aboutQuote": "Full disclosure, this chair does not make you weightless. The laws of universe still apply. I called the " +
			"manufacturer to complain and they told me that I should shove the chair somewhere inappropriate. I told them " +
			"I'd already done that but I still wasn't weightless.",
		"aboutQuoteSource": "From the Zero Gravity Chair listing",
		"aboutPhilosophy": "What if classified ads were honest? What if they revealed not just the condition of our possessions, " +
			"but the condition of our souls? Through intentional existential spirals and absurdist descriptions, these \"ads\" " +
			"become literature that questions why we buy, why we sell, and why we pretend any of this makes sense.",
		"aboutAuthenticity": "All items are real and actually for sale. The Facebook Marketplace links lead to the live ads (when " +
			"active). Some sell, some don't, but all serve as both functional commerce and performance art. The unhinged " +
			"descriptions are posted exactly as written to actual buyers on Facebook Marketplace.",
		"aboutWarning": "Reading these listings may cause existential questioning about the nature of capitalism, the meaning of " +
			"ownership, and why we accumulate objects only to eventually sell them to strangers on the internet.",
		"contactText": "Serious inquiries only. Cash preferred. Must be able to handle existential conversations about the nature of commerce.",
	}
}

// MergeDefaults rellena las claves ausentes con los valores por defecto.
// Solo afecta a la respuesta; el documento almacenado no se modifica.
func MergeDefaults(stored bson.M) map[string]interface{} {
	merged := make(map[string]interface{}, len(stored))
	for key, value := range stored {
		if key == "_id" {
			continue
		}
		merged[key] = value
	}
	for key, value := range DefaultSettings() {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}
	return merged
}
