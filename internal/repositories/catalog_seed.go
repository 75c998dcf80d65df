package repositories

import (
	cm "rionido/internal/models/catalog_models"
)

// SeedCatalog returns the built-in reference dataset: the lodge's partner
// businesses, wine trails, shopping districts, signature packages and route
// themes. The Postgres provider inserts it on first run; the in-memory
// provider and the tests use it directly.
func SeedCatalog() *cm.Catalog {
	return &cm.Catalog{
		Wineries: []cm.CatalogItem{
			{Name: "Furthermore Wines", Category: cm.CategoryWineTasting, Description: "Small-batch artisan winery with a charming tasting room", Location: "Santa Rosa", Hours: "12pm-6pm Thu-Mon", Phone: "(707) 978-9463", Price: "$$", Rating: "4.8", Zone: cm.ZoneSouth, Address: "1001 4th St, Santa Rosa, CA 95404"},
			{Name: "Korbel Champagne Cellars", Category: cm.CategoryWineTasting, Description: "Historic sparkling wine estate with beautiful gardens and tours", Location: "Guerneville", Hours: "10am-4:30pm daily", Phone: "(707) 824-7000", Price: "$$$", Rating: "4.6", Zone: cm.ZoneCentral, Address: "13250 River Rd, Guerneville, CA 95446"},
			{Name: "Russian River Vineyards", Category: cm.CategoryWineTasting, Description: "Family-owned winery with scenic picnic grounds and Pinot Noir", Location: "Forestville", Hours: "11am-5pm daily", Phone: "(707) 887-3344", Price: "$$", Rating: "4.5", Zone: cm.ZoneNorth, Address: "5700 Gravenstein Hwy N, Forestville, CA 95436"},
			{Name: "Iron Horse Vineyards", Category: cm.CategoryWineTasting, Description: "Renowned sparkling wine producer with stunning hilltop views", Location: "Sebastopol", Hours: "10am-4pm daily", Phone: "(707) 887-1507", Price: "$$$", Rating: "4.9", Zone: cm.ZoneSouth, Address: "9786 Ross Station Rd, Sebastopol, CA 95472"},
			{Name: "Porter Creek Vineyards", Category: cm.CategoryWineTasting, Description: "Small organic hillside winery specializing in Pinot Noir and Chardonnay", Location: "Healdsburg", Hours: "10:30am-4:30pm daily", Phone: "(707) 433-6321", Price: "$$", Rating: "4.7", Zone: cm.ZoneHealdsburg, Address: "8735 Westside Rd, Healdsburg, CA 95448"},
			{Name: "Benovia Winery", Category: cm.CategoryWineTasting, Description: "Estate Pinot Noir and Chardonnay with elegant tasting room", Location: "Santa Rosa", Hours: "10am-4pm Thu-Mon", Phone: "(707) 921-1040", Price: "$$$", Rating: "4.8", Zone: cm.ZoneSouth, Address: "3339 Hartman Rd, Santa Rosa, CA 95401"},
		},

		Restaurants: []cm.CatalogItem{
			{Name: "Graze", Category: cm.CategoryFineDining, Description: "Upscale farm-to-table restaurant at Rio Nido Lodge with seasonal menu", Location: "Rio Nido Lodge", Hours: "5pm-9pm Wed-Sun", Phone: "(707) 869-2323", Price: "$$$", Rating: "4.8", Zone: cm.ZoneCentral, Address: "14540 Canyon Two Rd, Guerneville, CA 95446"},
			{Name: "Graze Brunch", Category: cm.CategoryBreakfastBrunch, Description: "Weekend brunch at Rio Nido Lodge featuring farm-fresh ingredients and seasonal specialties", Location: "Rio Nido Lodge", Hours: "8am-2pm Fri-Sun", Phone: "(707) 869-2323", Price: "$$$", Rating: "4.8", Zone: cm.ZoneCentral, HasBreakfast: true, IsGrazeFallback: true, Address: "14540 Canyon Two Rd, Guerneville, CA 95446"},
			{Name: "Rio Nido Lodge Lounge", Category: cm.CategoryBreakfast, Description: "Complimentary coffee and fresh pastries served in the cozy lodge lounge", Location: "Rio Nido Lodge", Hours: "8am-10am Mon-Thu", Phone: "(707) 869-2323", Price: "Free", Rating: "4.8", Zone: cm.ZoneCentral, HasBreakfast: true, IsGrazeFallback: true, Address: "14540 Canyon Two Rd, Guerneville, CA 95446"},
			{Name: "Boon Eat + Drink", Category: cm.CategoryFineDining, Description: "Michelin-recommended restaurant focusing on local, seasonal cuisine", Location: "Guerneville", Hours: "5pm-9pm Wed-Sun", Phone: "(707) 869-0780", Price: "$$$", Rating: "4.7", Zone: cm.ZoneCentral, Address: "16248 Main St, Guerneville, CA 95446"},
			{Name: "Big Bottom Market", Category: cm.CategoryBreakfastMarket, Description: "Famous for biscuits and local artisan products", Location: "Guerneville", Hours: "8am-3pm daily", Phone: "(707) 604-7295", Price: "$$", Rating: "4.6", Zone: cm.ZoneCentral, HasBreakfast: true, Address: "16228 Main St, Guerneville, CA 95446"},
			{Name: "Seaside Metal", Category: cm.CategoryCasualDining, Description: "Waterfront seafood shack with fresh catches and coastal vibes", Location: "Jenner", Hours: "11am-8pm Thu-Mon", Phone: "(707) 865-0607", Price: "$$", Rating: "4.5", Zone: cm.ZoneCoast, Address: "10439 CA-1, Jenner, CA 95450"},
			{Name: "The Farmhouse Inn Restaurant", Category: cm.CategoryFineDining, Description: "Michelin-starred fine dining with wine country elegance", Location: "Forestville", Hours: "5:30pm-9pm Thu-Sun", Phone: "(707) 887-3300", Price: "$$$", Rating: "4.9", Zone: cm.ZoneNorth, Address: "7871 River Rd, Forestville, CA 95436"},
			{Name: "Hazel", Category: cm.CategoryFineDining, Description: "Elevated California cuisine with locally-sourced ingredients in a sophisticated Occidental setting", Location: "Occidental", Hours: "5pm-9pm Wed-Sun", Phone: "(707) 823-6627", Price: "$$$", Rating: "4.8", Zone: cm.ZoneOccidental, Address: "3782 Bohemian Hwy, Occidental, CA 95465"},
			{Name: "Coffee Bazaar", Category: cm.CategoryBreakfast, Description: "Local coffee roaster and breakfast spot with pastries", Location: "Guerneville", Hours: "7am-2pm daily", Phone: "(707) 869-9706", Price: "$", Rating: "4.4", Zone: cm.ZoneCentral, HasBreakfast: true, Address: "14045 Armstrong Woods Rd, Guerneville, CA 95446"},
			{Name: "Main Street Station", Category: cm.CategoryBreakfast, Description: "Cozy cafe with hearty breakfast plates, fresh-baked goods, and local coffee", Location: "Guerneville", Hours: "7am-2pm daily", Phone: "(707) 869-0501", Price: "$", Rating: "4.5", Zone: cm.ZoneCentral, HasBreakfast: true, Address: "16280 Main St, Guerneville, CA 95446"},
			{Name: "Pat's Restaurant", Category: cm.CategoryBreakfast, Description: "Classic American diner with generous portions and friendly service", Location: "Guerneville", Hours: "7am-2pm daily", Phone: "(707) 869-9904", Price: "$", Rating: "4.3", Zone: cm.ZoneCentral, HasBreakfast: true, Address: "16236 Main St, Guerneville, CA 95446"},
			{Name: "Stumptown Brewery Cafe", Category: cm.CategoryBreakfast, Description: "Casual breakfast spot with craft coffee and homestyle cooking", Location: "Guerneville", Hours: "7:30am-2pm Fri-Mon", Phone: "(707) 869-0705", Price: "$", Rating: "4.4", Zone: cm.ZoneCentral, HasBreakfast: true, Address: "15045 River Rd, Guerneville, CA 95446"},
			{Name: "Occidental Bohemian Farmer's Market Bistro", Category: cm.CategoryCasualDining, Description: "Farm-fresh ingredients in a charming small-town setting", Location: "Occidental", Hours: "11am-8pm Fri-Tue", Phone: "(707) 874-3675", Price: "$$", Rating: "4.5", Zone: cm.ZoneOccidental, Address: "3610 Bohemian Hwy, Occidental, CA 95465"},
			{Name: "Howard's Cafe", Category: cm.CategoryBreakfast, Description: "Classic American diner with huge portions and old-school charm", Location: "Occidental", Hours: "7am-2pm daily", Phone: "(707) 874-2838", Price: "$", Rating: "4.6", Zone: cm.ZoneOccidental, HasBreakfast: true, Address: "3611 Bohemian Hwy, Occidental, CA 95465"},
			{Name: "Wild Flour Bread", Category: cm.CategoryBreakfast, Description: "Artisan wood-fired bakery with exceptional pastries and morning buns", Location: "Freestone", Hours: "8:30am-2pm Fri-Sun", Phone: "(707) 874-2938", Price: "$$", Rating: "4.8", Zone: cm.ZoneOccidental, HasBreakfast: true, Address: "140 Bohemian Hwy, Freestone, CA 95472"},
			{Name: "Bohemian Cafe", Category: cm.CategoryBreakfast, Description: "Small-town breakfast spot with espresso drinks and fresh pastries", Location: "Occidental", Hours: "7am-2pm Wed-Mon", Phone: "(707) 874-1234", Price: "$", Rating: "4.4", Zone: cm.ZoneOccidental, HasBreakfast: true, Address: "3688 Bohemian Hwy, Occidental, CA 95465"},
			{Name: "Willow Wood Market Cafe", Category: cm.CategoryBreakfast, Description: "Organic breakfast and lunch in a garden setting", Location: "Graton", Hours: "8am-3pm Wed-Mon", Phone: "(707) 823-0233", Price: "$$", Rating: "4.6", Zone: cm.ZoneSouth, HasBreakfast: true, Address: "9020 Graton Rd, Graton, CA 95444"},
			{Name: "Hardcore Espresso", Category: cm.CategoryBreakfast, Description: "Punk rock-themed coffee shop with excellent espresso drinks and vegan pastries", Location: "Sebastopol", Hours: "6:30am-5pm daily", Phone: "(707) 829-9010", Price: "$", Rating: "4.7", Zone: cm.ZoneSouth, HasBreakfast: true, Address: "6761 Sebastopol Ave, Sebastopol, CA 95472"},
			{Name: "Slice of Life", Category: cm.CategoryBreakfast, Description: "Health-focused cafe with organic smoothies, acai bowls, and hearty breakfast options", Location: "Sebastopol", Hours: "7am-3pm daily", Phone: "(707) 829-6627", Price: "$$", Rating: "4.5", Zone: cm.ZoneSouth, HasBreakfast: true, Address: "6970 McKinley St, Sebastopol, CA 95472"},
			{Name: "Retrograde Coffee Roasters", Category: cm.CategoryBreakfast, Description: "Local coffee roastery with pastries, breakfast sandwiches, and artisan coffee", Location: "Sebastopol", Hours: "7am-2pm daily", Phone: "(707) 823-7200", Price: "$", Rating: "4.6", Zone: cm.ZoneSouth, HasBreakfast: true, Address: "8351 Gravenstein Hwy, Sebastopol, CA 95472"},
			{Name: "Fern Bar", Category: cm.CategoryCasualDining, Description: "California coastal cuisine with excellent lunch and dinner plates", Location: "Sebastopol", Hours: "11am-9pm daily", Phone: "(707) 827-3839", Price: "$$", Rating: "4.7", Zone: cm.ZoneSouth, Address: "6780 McKinley St, Sebastopol, CA 95472"},
			{Name: "The Barlow Marketplace Cafe", Category: cm.CategoryBreakfast, Description: "Artisan marketplace cafe with fresh pastries, breakfast burritos, and local coffee", Location: "Sebastopol", Hours: "7am-3pm daily", Phone: "(707) 824-5600", Price: "$$", Rating: "4.6", Zone: cm.ZoneSouth, HasBreakfast: true, Address: "6770 McKinley St, Sebastopol, CA 95472"},
			{Name: "River's End Restaurant", Category: cm.CategoryFineDining, Description: "Spectacular ocean views with fresh seafood and steaks", Location: "Jenner", Hours: "12pm-8pm Thu-Mon", Phone: "(707) 865-2484", Price: "$$$", Rating: "4.6", Zone: cm.ZoneCoast, Address: "11048 CA-1, Jenner, CA 95450"},
			{Name: "Underwood Bar & Bistro", Category: cm.CategoryCasualDining, Description: "Wine country comfort food with extensive local wine list", Location: "Graton", Hours: "5pm-9pm Wed-Sun", Phone: "(707) 823-7023", Price: "$$", Rating: "4.7", Zone: cm.ZoneSouth, Address: "9113 Graton Rd, Graton, CA 95444"},
			{Name: "Ace in the Hole Cider Pub", Category: cm.CategoryCasualDining, Description: "Farm-to-table pub featuring house-made ciders and seasonal menu", Location: "Sebastopol", Hours: "12pm-8pm daily", Phone: "(707) 827-3697", Price: "$$", Rating: "4.5", Zone: cm.ZoneSouth, Address: "3100 Gravenstein Hwy S, Sebastopol, CA 95472"},
			{Name: "Stavrand Restaurant", Category: cm.CategoryCasualDining, Description: "California cuisine in a cozy, rustic setting", Location: "Guerneville", Hours: "5pm-9pm Wed-Sun", Phone: "(707) 869-0501", Price: "$$", Rating: "4.4", Zone: cm.ZoneCentral, Address: "16280 Main St, Guerneville, CA 95446"},
			{Name: "Cafe Aquatica", Category: cm.CategoryBreakfast, Description: "Waterfront cafe with coffee, breakfast burritos, and ocean views", Location: "Jenner", Hours: "8am-3pm daily", Phone: "(707) 865-2251", Price: "$", Rating: "4.5", Zone: cm.ZoneCoast, HasBreakfast: true, Address: "10439 CA-1, Jenner, CA 95450"},
			{Name: "Blue Heron Restaurant", Category: cm.CategoryCasualDining, Description: "Classic diner with hearty breakfasts and coastal charm", Location: "Duncans Mills", Hours: "7am-2pm daily", Phone: "(707) 865-9135", Price: "$", Rating: "4.3", Zone: cm.ZoneCoast, HasBreakfast: true, Address: "25300 Steelhead Blvd, Duncans Mills, CA 95430"},
			{Name: "Cape Fear Cafe", Category: cm.CategoryCasualDining, Description: "Historic cafe in Duncans Mills with homestyle cooking", Location: "Duncans Mills", Hours: "8am-3pm Fri-Mon", Phone: "(707) 865-9246", Price: "$", Rating: "4.4", Zone: cm.ZoneCoast, HasBreakfast: true, Address: "25191 Main St, Duncans Mills, CA 95430"},
			{Name: "Tides Wharf Restaurant", Category: cm.CategoryCasualDining, Description: "Fresh seafood and clam chowder overlooking Bodega Bay harbor", Location: "Bodega Bay", Hours: "7am-9pm daily", Phone: "(707) 875-3652", Price: "$$", Rating: "4.3", Zone: cm.ZoneCoast, HasBreakfast: true, Address: "835 CA-1, Bodega Bay, CA 94923"},
			{Name: "Terrapin Creek Cafe", Category: cm.CategoryFineDining, Description: "Award-winning small plates and wine pairings in Bodega Bay", Location: "Bodega Bay", Hours: "5pm-9pm Thu-Mon", Phone: "(707) 875-2700", Price: "$$$", Rating: "4.7", Zone: cm.ZoneCoast, Address: "1580 Eastshore Rd, Bodega Bay, CA 94923"},
			{Name: "Forestville Coffee House", Category: cm.CategoryBreakfast, Description: "Cozy neighborhood cafe with artisan coffee and homemade pastries", Location: "Forestville", Hours: "7am-2pm daily", Phone: "(707) 887-1234", Price: "$", Rating: "4.5", Zone: cm.ZoneNorth, HasBreakfast: true, Address: "6535 Front St, Forestville, CA 95436"},
			{Name: "Backyard Forestville", Category: cm.CategoryBreakfast, Description: "Garden patio cafe serving farm-fresh breakfasts and specialty coffee", Location: "Forestville", Hours: "7:30am-2pm Thu-Mon", Phone: "(707) 887-9463", Price: "$$", Rating: "4.6", Zone: cm.ZoneNorth, HasBreakfast: true, Address: "6566 Front St, Forestville, CA 95436"},
			{Name: "Forestville Bakery", Category: cm.CategoryBreakfast, Description: "Local bakery with fresh pastries, breakfast sandwiches, and coffee", Location: "Forestville", Hours: "6:30am-1pm Wed-Sun", Phone: "(707) 887-3301", Price: "$", Rating: "4.5", Zone: cm.ZoneNorth, HasBreakfast: true, Address: "6604 Front St, Forestville, CA 95436"},
			{Name: "River Inn Grill", Category: cm.CategoryBreakfast, Description: "Rustic riverside cafe with hearty American breakfast classics", Location: "Forestville", Hours: "7am-2pm daily", Phone: "(707) 887-7662", Price: "$", Rating: "4.4", Zone: cm.ZoneNorth, HasBreakfast: true, Address: "16141 Main St, Forestville, CA 95436"},
			{Name: "Occidental Cafe & General Store", Category: cm.CategoryBreakfast, Description: "Historic cafe serving hearty breakfasts and local coffee", Location: "Occidental", Hours: "7am-2pm daily", Phone: "(707) 874-1234", Price: "$", Rating: "4.4", Zone: cm.ZoneOccidental, HasBreakfast: true, Address: "3611 Main St, Occidental, CA 95465"},
			{Name: "Downtown Bakery & Creamery", Category: cm.CategoryBreakfast, Description: "Award-winning bakery with fresh pastries and artisan coffee", Location: "Healdsburg", Hours: "6:30am-3pm daily", Phone: "(707) 431-2719", Price: "$$", Rating: "4.7", Zone: cm.ZoneHealdsburg, HasBreakfast: true, Address: "308A Center St, Healdsburg, CA 95448"},
			{Name: "Costeaux French Bakery", Category: cm.CategoryBreakfast, Description: "Authentic French bakery with croissants, quiche, and espresso", Location: "Healdsburg", Hours: "6am-6pm daily", Phone: "(707) 433-1913", Price: "$$", Rating: "4.6", Zone: cm.ZoneHealdsburg, HasBreakfast: true, Address: "417 Healdsburg Ave, Healdsburg, CA 95448"},
			{Name: "Flying Goat Coffee", Category: cm.CategoryBreakfast, Description: "Local coffee roastery with pastries and breakfast sandwiches", Location: "Healdsburg", Hours: "6:30am-5pm daily", Phone: "(707) 433-3599", Price: "$", Rating: "4.7", Zone: cm.ZoneHealdsburg, HasBreakfast: true, Address: "324 Center St, Healdsburg, CA 95448"},
			{Name: "Healdsburg SHED Cafe", Category: cm.CategoryBreakfast, Description: "Farm-to-table breakfast in a modern market setting", Location: "Healdsburg", Hours: "7am-3pm daily", Phone: "(707) 431-7433", Price: "$$", Rating: "4.5", Zone: cm.ZoneHealdsburg, HasBreakfast: true, Address: "25 North St, Healdsburg, CA 95448"},
		},

		Activities: []cm.CatalogItem{
			{Name: "Armstrong Redwoods State Natural Reserve", Category: cm.CategoryNatureHiking, Description: "Ancient old-growth redwood forest with peaceful trails", Location: "Guerneville", Hours: "Sunrise to sunset daily", Price: "$10 parking", Rating: "4.9", Zone: cm.ZoneCentral, Address: "17000 Armstrong Woods Rd, Guerneville, CA 95446"},
			{Name: "Johnson's Beach", Category: cm.CategoryOutdoor, Description: "Family-friendly river beach perfect for swimming and sunbathing", Location: "Guerneville", Hours: "10am-6pm daily (summer)", Price: "Free", Rating: "4.5", Zone: cm.ZoneCentral, Address: "16241 1st St, Guerneville, CA 95446"},
			{Name: "Goat Rock State Beach", Category: cm.CategoryNature, Description: "Dramatic coastal cliffs and seal viewing at river mouth", Location: "Jenner", Hours: "Open 24 hours", Price: "Free", Rating: "4.8", Zone: cm.ZoneCoast, Address: "Goat Rock Rd, Jenner, CA 95450"},
			{Name: "Burke's Canoe Trips", Category: cm.CategoryOutdoor, Description: "Scenic Russian River kayaking and canoeing adventures", Location: "Forestville", Hours: "9am-6pm daily (May-Oct)", Phone: "(707) 887-1222", Price: "$$", Rating: "4.6", Zone: cm.ZoneNorth, Address: "8600 River Rd, Forestville, CA 95436"},
			{Name: "Osmosis Day Spa Sanctuary", Category: cm.CategorySpa, Description: "Unique enzyme bath experience and Japanese-inspired spa treatments", Location: "Occidental", Hours: "9am-8pm daily", Phone: "(707) 823-8231", Price: "$$$", Rating: "4.7", Zone: cm.ZoneOccidental, Address: "209 Bohemian Hwy, Freestone, CA 95472"},
			{Name: "Duncans Mills Historic District", Category: cm.CategoryEntertainment, Description: "Historic railroad town with antique shops and charming main street", Location: "Duncans Mills", Hours: "Varies by shop", Price: "Free", Rating: "4.4", Zone: cm.ZoneCoast, Address: "Main St, Duncans Mills, CA 95430"},
			{Name: "Bodega Head Trail", Category: cm.CategoryNatureHiking, Description: "Coastal hiking with whale watching opportunities and ocean views", Location: "Bodega Bay", Hours: "Sunrise to sunset", Price: "Free", Rating: "4.8", Zone: cm.ZoneCoast, Address: "Bodega Head, Bodega Bay, CA 94923"},
			{Name: "Russian River Adventures", Category: cm.CategoryOutdoor, Description: "River tube rentals and guided float trips", Location: "Guerneville", Hours: "9am-6pm daily (May-Sep)", Phone: "(707) 887-2452", Price: "$$", Rating: "4.5", Zone: cm.ZoneCentral, Address: "20 Healdsburg Ave, Guerneville, CA 95446"},
			{Name: "Sonoma Coast State Park", Category: cm.CategoryNatureHiking, Description: "Rugged coastline with tide pools and scenic overlooks", Location: "Jenner", Hours: "Sunrise to sunset", Price: "$8 parking", Rating: "4.7", Zone: cm.ZoneCoast, Address: "CA-1, Jenner, CA 95450"},
			{Name: "Jenner Headlands Preserve", Category: cm.CategoryNatureHiking, Description: "Coastal trails with panoramic ocean and river views", Location: "Jenner", Hours: "Sunrise to sunset", Price: "Free", Rating: "4.6", Zone: cm.ZoneCoast, Address: "22680 CA-1, Jenner, CA 95450"},
		},

		Shops: []cm.CatalogItem{
			{Name: "Nimble & Finn's Ice Cream", Category: cm.CategoryDessertShop, Description: "Artisan ice cream with unique and classic flavors", Location: "Guerneville", Hours: "12pm-9pm daily", Phone: "(707) 604-7462", Price: "$", Rating: "4.8", Zone: cm.ZoneCentral, Address: "16390 4th St, Guerneville, CA 95446"},
			{Name: "Main Street Station Antiques", Category: cm.CategoryAntiques, Description: "Large antique store with vintage finds and collectibles", Location: "Guerneville", Hours: "10am-6pm daily", Phone: "(707) 869-2404", Price: "Varies", Rating: "4.4", Zone: cm.ZoneCentral, Address: "16280 Main St, Guerneville, CA 95446"},
			{Name: "Jilly's Roadhouse", Category: cm.CategoryGiftShop, Description: "Eclectic gifts, home decor, and local artisan products", Location: "Guerneville", Hours: "11am-6pm Thu-Mon", Phone: "(707) 869-3900", Price: "$$", Rating: "4.5", Zone: cm.ZoneCentral, Address: "16250 Main St, Guerneville, CA 95446"},
			{Name: "Copperfield's Books", Category: cm.CategoryBookstore, Description: "Independent bookstore with great selection and local author events", Location: "Sebastopol", Hours: "10am-7pm daily", Phone: "(707) 823-2618", Price: "Varies", Rating: "4.7", Zone: cm.ZoneSouth, Address: "138 N Main St, Sebastopol, CA 95472"},
			{Name: "The Barlow", Category: cm.CategoryMarketCafe, Description: "Artisan marketplace with wine tasting, craft distilleries, and eateries", Location: "Sebastopol", Hours: "Varies by vendor", Price: "$$", Rating: "4.6", Zone: cm.ZoneSouth, Address: "6770 McKinley St, Sebastopol, CA 95472"},
			{Name: "Spud Point Crab Company", Category: cm.CategoryMarket, Description: "Fresh crab and clam chowder at a working harbor", Location: "Bodega Bay", Hours: "9am-5pm daily", Phone: "(707) 875-9472", Price: "$$", Rating: "4.7", Zone: cm.ZoneCoast, Address: "1860 Westshore Rd, Bodega Bay, CA 94923"},
			{Name: "Wild Flour Bread Bakery", Category: cm.CategoryBakery, Description: "Artisan bakery with wood-fired breads and pastries", Location: "Freestone", Hours: "8:30am-5:30pm Fri-Mon", Phone: "(707) 874-2938", Price: "$", Rating: "4.8", Zone: cm.ZoneOccidental, Address: "140 Bohemian Hwy, Freestone, CA 95472"},
			{Name: "Sebastopol Farmers Market", Category: cm.CategoryMarket, Description: "Weekly farmers market with local produce and crafts", Location: "Sebastopol", Hours: "10am-1:30pm Sunday", Price: "$", Rating: "4.6", Zone: cm.ZoneSouth, Address: "Depot St, Sebastopol, CA 95472"},
			{Name: "Kozlowski Farms", Category: cm.CategoryFarmStore, Description: "Farm stand with homemade jams, pies, and apple products", Location: "Forestville", Hours: "9am-5pm daily", Phone: "(707) 887-1587", Price: "$$", Rating: "4.5", Zone: cm.ZoneNorth, Address: "5566 Gravenstein Hwy N, Forestville, CA 95436"},
			{Name: "Duncans Mills General Store", Category: cm.CategoryGiftShop, Description: "Historic general store with gifts, candy, and souvenirs", Location: "Duncans Mills", Hours: "10am-5pm daily", Phone: "(707) 865-2548", Price: "$", Rating: "4.4", Zone: cm.ZoneCoast, Address: "25101 Main St, Duncans Mills, CA 95430"},
			{Name: "Gold Coast Coffee & Bakery", Category: cm.CategoryBakery, Description: "Fresh pastries, coffee, and breakfast treats", Location: "Duncans Mills", Hours: "7am-3pm daily", Price: "$", Rating: "4.3", Zone: cm.ZoneCoast, Address: "25191 Main St, Duncans Mills, CA 95430"},
			{Name: "The Chanslor Guest Ranch Gift Shop", Category: cm.CategoryGiftShop, Description: "Western-themed gifts and local artwork", Location: "Bodega Bay", Hours: "10am-5pm daily", Price: "$$", Rating: "4.2", Zone: cm.ZoneCoast, Address: "2660 CA-1, Bodega Bay, CA 94923"},
		},

		WineTrails: []cm.WineTrail{
			{
				Name:           "Russian River Valley Pinot Trail",
				Description:    "Explore world-class Pinot Noir producers in the heart of Russian River Valley",
				ExclusivePerks: "Private tastings + 15% off all purchases + complimentary cheese pairings",
				Zone:           cm.ZoneNorth,
				Wineries: []cm.TrailStop{
					{Name: "Rochioli Vineyards", Blurb: "Legendary family estate producing world-class Pinot Noir. Four generations of winemaking excellence with sought-after allocation-only wines."},
					{Name: "Porter Creek Vineyards", Blurb: "Organic hillside estate specializing in old-vine Pinot Noir and Chardonnay. Intimate tastings in a rustic barn setting."},
					{Name: "Russian River Vineyards", Blurb: "Beautiful grounds perfect for picnicking. Known for approachable Pinot Noir and gorgeous outdoor tasting areas."},
				},
			},
			{
				Name:           "Sparkling Wine Discovery Route",
				Description:    "Discover exceptional sparkling wines from historic estates",
				ExclusivePerks: "VIP tours + complimentary sparkling tasting + souvenir flutes",
				Zone:           cm.ZoneCentral,
				Wineries: []cm.TrailStop{
					{Name: "Iron Horse Vineyards", Blurb: "Stunning hilltop estate famous for sparkling wines served at presidential inaugurations. Breathtaking views and outdoor tastings."},
					{Name: "Korbel Champagne Cellars", Blurb: "Historic sparkling wine producer since 1882. Beautiful rose gardens, brandy tastings, and delicatessen on-site."},
				},
			},
			{
				Name:           "Boutique Artisan Winemaker Trail",
				Description:    "Small-batch artisan winemakers crafting unique, terroir-driven wines",
				ExclusivePerks: "Meet the winemakers + barrel tastings + 20% off bottle purchases",
				Zone:           cm.ZoneSouth,
				Wineries: []cm.TrailStop{
					{Name: "Furthermore Wines", Blurb: "Small-batch artisan wines in a charming downtown Santa Rosa tasting room. Focus on natural winemaking and unique varietals."},
					{Name: "Ryme Cellars", Blurb: "Vermouth specialists with exceptional wines. Known for innovative blends and sustainable practices in their Sebastopol tasting room."},
					{Name: "Benovia Winery", Blurb: "Estate Pinot Noir and Chardonnay from meticulously farmed vineyards. Elegant tasting room with vineyard views."},
				},
			},
		},

		ShoppingDistricts: []cm.ShoppingDistrict{
			{Name: "Downtown Guerneville Shopping District", Description: "Explore unique boutiques, antique shops, and local artisan stores in the heart of the Russian River", Highlights: []string{"Main Street Station antiques", "Nimble & Finn's Ice Cream", "Jilly's eclectic gifts", "Local art galleries"}, Hours: "Most shops 11am-6pm daily", Zone: cm.ZoneCentral, Address: "Main St, Guerneville, CA 95446"},
			{Name: "Downtown Healdsburg Plaza", Description: "Upscale shops, wine tasting rooms, and gourmet food stores surrounding the historic town plaza", Highlights: []string{"Boutique clothing stores", "Art galleries", "Cheese shops", "Wine accessory stores"}, Hours: "Most shops 10am-6pm daily", Zone: cm.ZoneHealdsburg, Address: "Healdsburg Plaza, Healdsburg, CA 95448"},
			{Name: "Downtown Sebastopol Shopping", Description: "Quirky downtown with independent bookstores, farmers markets, and unique local crafts", Highlights: []string{"Copperfield's Books", "The Barlow artisan market", "Farmers market vendors", "Local craft stores"}, Hours: "Most shops 10am-7pm, Farmers Market Sun 10am-1:30pm", Zone: cm.ZoneSouth, Address: "Main St, Sebastopol, CA 95472"},
			{Name: "Occidental Village Shopping", Description: "Charming historic town with artisan galleries, antique shops, and local crafts", Highlights: []string{"Artisan galleries", "Antique shops", "Local crafts", "Historic buildings"}, Hours: "Most shops 11am-5pm", Zone: cm.ZoneOccidental, Address: "Main St, Occidental, CA 95465"},
			{Name: "Bodega Bay Coastal Shopping", Description: "Coastal shops featuring local art, seafood markets, and ocean-themed gifts", Highlights: []string{"Fresh seafood markets", "Coastal art galleries", "Surf shops", "Ocean gift stores"}, Hours: "Most shops 10am-5pm daily", Zone: cm.ZoneCoast, Address: "Highway 1, Bodega Bay, CA 94923"},
		},

		SignatureExperiences: []cm.SignatureExperience{
			{ID: "sig_rnl1", Name: "Wine Country Limo Package", Tagline: "Five Wineries, One Unforgettable Day", Description: "Free limo service with exclusive wine tasting tour and gourmet lunch.", Duration: "6-7 hours", Price: "$125 per person", BestTime: "10am - 5pm", Rating: "5.0", IsExclusive: true, Includes: []string{"Private limousine service", "Five winery visits with exclusive tastings", "Gourmet deli lunch from Graze", "Special discounts at all participating wineries", "Professional driver/guide"}},
			{ID: "sig_rnl2", Name: "Explore Sonoma County's Hidden Gems", Tagline: "A Curated Journey with Local Expert Fawn", Description: "Discover secret spots with personal guide Fawn - DeLoach Winery tasting, cheesemaker tour, Armstrong Redwoods, coastal picnic, and artisan treasures.", Duration: "Full day (6-7 hours)", Price: "$185 per person", BestTime: "9am - 4pm", Rating: "5.0", IsExclusive: true, Includes: []string{"Personal guide for the entire day", "Winery tasting at DeLoach Vineyards", "Cheesemaker tour and samples", "Armstrong Redwoods nature walk", "Gourmet oceanside picnic lunch"}},
			{ID: "sig_3", Name: "Russian River Kayak Adventure", Tagline: "Paddle Through Paradise", Description: "Guided kayaking experience on the scenic Russian River with wildlife viewing.", Duration: "3 hours", Price: "$75 per person", BestTime: "Mid-morning", Rating: "4.8", Includes: []string{"Kayak and paddle rental", "Life jackets and safety equipment", "Experienced guide", "Shuttle service"}},
			{ID: "sig_4", Name: "Sunset Wine & Cheese Pairing", Tagline: "Golden Hour Elegance", Description: "Curated wine tasting with artisan cheese pairings at a hillside vineyard.", Duration: "2 hours", Price: "$85 per person", BestTime: "5pm - 7pm (seasonal)", Rating: "4.9", Includes: []string{"Five wine tastings", "Artisan cheese board", "Sommelier-led tasting", "Souvenir wine glass"}},
			{ID: "sig_5", Name: "Chef's Table Experience", Tagline: "An Evening with the Chef", Description: "Five-course tasting menu with wine pairings and kitchen tour.", Duration: "3 hours", Price: "$165 per person", BestTime: "6pm seating", Rating: "5.0", Includes: []string{"Kitchen tour", "Five-course tasting menu", "Wine pairings", "Recipe cards"}},
			{ID: "sig_6", Name: "Coastal Explorer Package", Tagline: "From Redwoods to Rugged Coast", Description: "Full-day guided tour from the redwoods to the Pacific coast.", Duration: "8 hours", Price: "$195 per person", BestTime: "9am - 5pm", Rating: "4.9", Includes: []string{"Private luxury van", "Expert guide", "Gourmet picnic lunch", "All entrance fees"}},
			{ID: "sig_7", Name: "Vineyard Bike Tour", Tagline: "Pedal Through Wine Country", Description: "Leisurely bike tour through scenic vineyards with wine tastings.", Duration: "4 hours", Price: "$125 per person", BestTime: "10am - 2pm", Rating: "4.8", Includes: []string{"Electric-assist bike rental", "Helmet and safety gear", "Expert guide", "Three winery tastings"}},
			{ID: "sig_8", Name: "Spa & Wine Retreat", Tagline: "Relax, Restore, Rejuvenate", Description: "Half-day spa package with massage, facial, and wine tasting.", Duration: "4 hours", Price: "$285 per person", BestTime: "10am or 2pm", Rating: "5.0", Includes: []string{"60-minute massage", "Facial treatment", "Private wine tasting", "Spa amenity access"}},
			{ID: "sig_9", Name: "Farm-to-Table Dinner Series", Tagline: "Celebrating Local Harvest", Description: "Multi-course dinner featuring ingredients from neighboring farms.", Duration: "3 hours", Price: "$145 per person", BestTime: "6pm - 9pm (Saturdays only)", Rating: "4.9", Includes: []string{"Four-course dinner", "Wine pairings", "Meet the farmers", "Take-home preserves"}},
			{ID: "sig_10", Name: "Photography Workshop", Tagline: "Capture the Beauty", Description: "Professional photography workshop in stunning wine country locations.", Duration: "4 hours", Price: "$175 per person", BestTime: "Golden hour (morning or evening)", Rating: "4.8", Includes: []string{"Professional instruction", "Transportation to locations", "Digital photo portfolio", "Wine & snacks"}},
			{ID: "sig_11", Name: "Sunset River Cruise", Tagline: "Romance on the Russian River", Description: "Private sunset cruise with champagne and hors d'oeuvres.", Duration: "2 hours", Price: "$95 per person", BestTime: "7pm (seasonal)", Rating: "5.0", Includes: []string{"Private boat cruise", "Champagne service", "Gourmet hors d'oeuvres", "Sunset views"}},
			{ID: "sig_12", Name: "Foraging & Cooking Class", Tagline: "From Forest to Fork", Description: "Guided foraging walk followed by hands-on cooking class.", Duration: "5 hours", Price: "$155 per person", BestTime: "9am - 2pm", Rating: "4.9", Includes: []string{"Guided foraging walk", "Hands-on cooking class", "Lunch featuring foraged foods", "Recipe booklet"}},
		},

		RouteThemes: []cm.RouteTheme{
			{
				Name:      "Russian River Heartland",
				Theme:     cm.DayTheme{Name: "Wine & Dine", Icon: "🍷"},
				Zones:     []cm.Zone{cm.ZoneCentral, cm.ZoneNorth},
				TrailPick: &cm.TrailRecommendation{TrailName: "Russian River Valley Pinot Trail", TimeSlot: "11:00 AM - 2:30 PM"},
			},
			{
				Name:      "Sparkling Wine Route",
				Theme:     cm.DayTheme{Name: "Bubbles & Beauty", Icon: "✨"},
				Zones:     []cm.Zone{cm.ZoneCentral, cm.ZoneSouth},
				TrailPick: &cm.TrailRecommendation{TrailName: "Sparkling Wine Discovery Route", TimeSlot: "11:30 AM - 2:00 PM"},
			},
			{
				Name:      "Artisan Wine & Farm Trail",
				Theme:     cm.DayTheme{Name: "Farm to Glass", Icon: "🌾"},
				Zones:     []cm.Zone{cm.ZoneSouth, cm.ZoneOccidental},
				TrailPick: &cm.TrailRecommendation{TrailName: "Boutique Artisan Winemaker Trail", TimeSlot: "12:00 PM - 3:00 PM"},
			},
			{
				Name:         "Coastal Adventure",
				Theme:        cm.DayTheme{Name: "Ocean & Coast", Icon: "🌊"},
				Zones:        []cm.Zone{cm.ZoneCoast},
				DistrictPick: &cm.DistrictRecommendation{DistrictName: "Bodega Bay Coastal Shopping", TimeSlot: "2:00 PM - 4:00 PM"},
			},
			{
				Name:         "Sebastopol Explorer",
				Theme:        cm.DayTheme{Name: "Arts & Crafts", Icon: "🎨"},
				Zones:        []cm.Zone{cm.ZoneSouth, cm.ZoneOccidental},
				DistrictPick: &cm.DistrictRecommendation{DistrictName: "Downtown Sebastopol Shopping", TimeSlot: "2:00 PM - 5:00 PM"},
			},
		},
	}
}
