package memory

import "storefront-demo/internal/domains/catalog/domain"

// DefaultCatalog returns the built-in demo product list used when no catalog
// file or database is configured.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Смартфон Xiaomi Redmi Note 12", ImageURL: "/img/products/redmi-note-12.webp",
			Price: 14990, OldPrice: 22990, Rating: 4.5, SalesLabel: "2.1k купили",
			Badge: "Хит", BadgeKind: "hit", Brand: "Xiaomi", HasVideo: true,
		},
		{
			ID: 2, Name: "Наушники TWS Pro 6", ImageURL: "/img/products/tws-pro-6.webp",
			Price: 1290, OldPrice: 3490, Rating: 4.0, SalesLabel: "5.4k купили",
			Badge: "Распродажа", BadgeKind: "sale", Brand: "NoName", HasVideo: false,
		},
		{
			ID: 3, Name: "Робот-пылесос Clean Bot X5", ImageURL: "/img/products/clean-bot-x5.webp",
			Price: 8740, OldPrice: 17480, Rating: 4.5, SalesLabel: "846 купили",
			Brand: "CleanBot", HasVideo: true,
		},
		{
			ID: 4, Name: "Электрическая зубная щётка Sonic", ImageURL: "/img/products/sonic-brush.webp",
			Price: 990, OldPrice: 1980, Rating: 3.5, SalesLabel: "1.7k купили",
			Badge: "Новинка", BadgeKind: "new", Brand: "Sonic", HasVideo: false,
		},
		{
			ID: 5, Name: "Умные часы Watch Fit 3", ImageURL: "/img/products/watch-fit-3.webp",
			Price: 4590, OldPrice: 9180, Rating: 5, SalesLabel: "3.2k купили",
			Badge: "Хит", BadgeKind: "hit", Brand: "Huawei", HasVideo: true,
		},
		{
			ID: 6, Name: "Кофемашина Barista Mini", ImageURL: "/img/products/barista-mini.webp",
			Price: 12490, OldPrice: 18990, Rating: 4.0, SalesLabel: "412 купили",
			Brand: "Barista", HasVideo: false,
		},
		{
			ID: 7, Name: "Пылесос вертикальный V11", ImageURL: "/img/products/v11.webp",
			Price: 5108, OldPrice: 11544, Rating: 4.5, SalesLabel: "980 купили",
			Badge: "Распродажа", BadgeKind: "sale", Brand: "Dreame", HasVideo: true,
		},
		{
			ID: 8, Name: "Массажёр для шеи Relax Neo", ImageURL: "/img/products/relax-neo.webp",
			Price: 1890, OldPrice: 4490, Rating: 3.5, SalesLabel: "2.8k купили",
			Brand: "Relax", HasVideo: false,
		},
		{
			ID: 9, Name: "Блендер стационарный PowerMix", ImageURL: "/img/products/powermix.webp",
			Price: 2390, OldPrice: 4790, Rating: 4.0, SalesLabel: "633 купили",
			Badge: "Новинка", BadgeKind: "new", Brand: "PowerMix", HasVideo: false,
		},
		{
			ID: 10, Name: "Ирригатор портативный AquaJet", ImageURL: "/img/products/aquajet.webp",
			Price: 2190, OldPrice: 5480, Rating: 4.5, SalesLabel: "1.1k купили",
			Badge: "Хит", BadgeKind: "hit", Brand: "AquaJet", HasVideo: true,
		},
	}
}
