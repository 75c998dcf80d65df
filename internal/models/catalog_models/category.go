package catalog_models

import "strings"

// Collection identifies which catalog collection an item belongs to.
type Collection string

const (
	CollectionWineries    Collection = "wineries"
	CollectionRestaurants Collection = "restaurants"
	CollectionActivities  Collection = "activities"
	CollectionShops       Collection = "shops"
)

// Category is the closed set of business category tags used by the catalog.
type Category string

const (
	CategoryWineTasting       Category = "Wine Tasting"
	CategoryFineDining        Category = "Fine Dining"
	CategoryCasualDining      Category = "Casual Dining"
	CategoryBreakfast         Category = "Breakfast"
	CategoryBreakfastBrunch   Category = "Breakfast & Brunch"
	CategoryBreakfastMarket   Category = "Breakfast & Market"
	CategoryNatureHiking      Category = "Nature & Hiking"
	CategoryNature            Category = "Nature"
	CategoryOutdoor           Category = "Outdoor"
	CategoryEntertainment     Category = "Entertainment"
	CategorySpa               Category = "Spa"
	CategoryDessertShop       Category = "Dessert Shop"
	CategoryBakery            Category = "Bakery"
	CategoryAntiques          Category = "Antiques"
	CategoryBookstore         Category = "Bookstore"
	CategoryGiftShop          Category = "Gift Shop"
	CategoryFarmStore         Category = "Farm Store"
	CategoryMarket            Category = "Market"
	CategoryMarketCafe        Category = "Market & Cafe"
	CategorySignature         Category = "Signature Experience"
	CategoryWineTrail         Category = "Wine Trail"
	CategoryShoppingDistrict  Category = "Shopping District"
)

// Collection reports which catalog collection holds items of this category.
// The second return is false for categories with no replaceable collection
// (wine trails, shopping districts, signature experiences).
func (c Category) Collection() (Collection, bool) {
	switch c {
	case CategoryWineTasting:
		return CollectionWineries, true
	case CategoryFineDining, CategoryCasualDining, CategoryBreakfast,
		CategoryBreakfastBrunch, CategoryBreakfastMarket:
		return CollectionRestaurants, true
	case CategoryNatureHiking, CategoryNature, CategoryOutdoor,
		CategoryEntertainment, CategorySpa:
		return CollectionActivities, true
	case CategoryDessertShop, CategoryBakery, CategoryAntiques,
		CategoryBookstore, CategoryGiftShop, CategoryFarmStore,
		CategoryMarket, CategoryMarketCafe:
		return CollectionShops, true
	default:
		return "", false
	}
}

// IsBreakfastClass reports whether the category belongs to the breakfast meal
// class when swapping restaurants. Bakeries count as breakfast-class.
func (c Category) IsBreakfastClass() bool {
	return strings.Contains(string(c), "Breakfast") || c == CategoryBakery
}

// IsMarketCategory reports whether the category is preferred when the guest
// enabled the markets-and-delis toggle.
func (c Category) IsMarketCategory() bool {
	return c == CategoryBreakfastMarket || c == CategoryMarketCafe
}
