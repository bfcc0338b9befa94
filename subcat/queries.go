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

// queries.go - SQL for the master product mapping table
package subcat

// MappedSubcategoriesQuery loads every product row an operator has
// already mapped to a subcategory. These rows are the training set.
const MappedSubcategoriesQuery = `
SELECT MAPPING_PROCESS_TYPE,
       GM_GLOBAL_PRODUCT_ID,
       GM_COUNTRY_ID,
       GM_COUNTRY_NAME,
       GM_ADVERTISER_NAME,
       GM_SECTOR_NAME,
       GM_SUBSECTOR_NAME,
       GM_CATEGORY_NAME,
       GM_BRAND_NAME,
       GM_PRODUCT_NAME,
       SOS_PRODUCT,
       CP_SUBCATEGORY_NAME,
       CP_SUBCATEGORY_ID
FROM GM_CP_MASTER_PRODUCT_MAPPING
WHERE CP_SUBCATEGORY_NAME IS NOT NULL
  AND CP_SUBCATEGORY_ID IS NOT NULL`

// UnmappedSubcategoriesQuery loads the rows of one country that still
// need a subcategory guess.
const UnmappedSubcategoriesQuery = `
SELECT MAPPING_PROCESS_TYPE,
       GM_GLOBAL_PRODUCT_ID,
       GM_COUNTRY_ID,
       GM_COUNTRY_NAME,
       GM_ADVERTISER_NAME,
       GM_SECTOR_NAME,
       GM_SUBSECTOR_NAME,
       GM_CATEGORY_NAME,
       GM_BRAND_NAME,
       GM_PRODUCT_NAME,
       SOS_PRODUCT
FROM GM_CP_MASTER_PRODUCT_MAPPING
WHERE CP_SUBCATEGORY_NAME IS NULL
  AND GM_COUNTRY_NAME = $1`
