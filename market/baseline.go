//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2026 Nyein Phyo nphyo.dev@gmail.com
//
// This file is part of Wrangler.
//
// Wrangler is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wrangler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wrangler. If not, see https://www.gnu.org/licenses/.

package market

// EnglishCategoryMappings is the shared baseline for normalizing raw
// category names in English-language source files to the canonical
// competitive-harmonization categories. Markets layer their own entries
// on top of this map; market entries win on collision.
var EnglishCategoryMappings = map[string]string{
	"Oral care":          "Oral Care",
	"Oral Health":        "Oral Care",
	"Toothpaste":         "Oral Care",
	"Tooth Paste":        "Oral Care",
	"Toothbrush":         "Oral Care",
	"Tooth Brush":        "Oral Care",
	"Mouthwash":          "Oral Care",
	"Mouth Wash":         "Oral Care",
	"Dental Care":        "Oral Care",
	"Dentifrice":         "Oral Care",
	"Personal care":      "Personal Care",
	"Personal Hygiene":   "Personal Care",
	"Bar Soap":           "Personal Care",
	"Body Wash":          "Personal Care",
	"Body Cleansers":     "Personal Care",
	"Shower Gel":         "Personal Care",
	"Deodorant":          "Personal Care",
	"Deodorants":         "Personal Care",
	"Antiperspirant":     "Personal Care",
	"Hand Soap":          "Personal Care",
	"Liquid Soap":        "Personal Care",
	"Skin Care":          "Personal Care",
	"Home care":          "Home Care",
	"Household Cleaning": "Home Care",
	"Household Cleaners": "Home Care",
	"Surface Cleaners":   "Home Care",
	"Dishwashing":        "Home Care",
	"Dish Washing":       "Home Care",
	"Fabric Softener":    "Home Care",
	"Fabric Softeners":   "Home Care",
	"Fabric Conditioner": "Home Care",
	"Laundry Detergent":  "Home Care",
	"Pet food":           "Pet Nutrition",
	"Pet Food":           "Pet Nutrition",
	"Dog Food":           "Pet Nutrition",
	"Cat Food":           "Pet Nutrition",
	"Pet Care":           "Pet Nutrition",
	"Other":              "Other",
	"Others":             "Other",
}
