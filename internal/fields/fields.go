package fields

import (
	"github.com/hajime-ito/catalog-extractor/internal/entity"
	"github.com/hajime-ito/catalog-extractor/internal/normalize"
)

// ExtractAll runs every extractor over one section of text and aggregates
// the results. Extractors are independent; a miss in one never blocks
// another.
func ExtractAll(text string) entity.RecordFields {
	lines := normalize.Clean(normalize.Lines(text))

	f := entity.RecordFields{
		ProductName:   ProductName(lines),
		SKU:           SKU(text),
		ProductCode:   ProductCode(text),
		JANCode:       JANCode(text),
		CharacterName: CharacterName(text),
		SupplierName:  SupplierName(text),
		IPName:        IPName(text),

		Price:               Price(text),
		ReferenceSalesPrice: ReferenceSalesPrice(text),
		WholesalePrice:      WholesalePrice(text),
		OrderAmount:         OrderAmount(text),
		Stock:               Stock(text),
		WholesaleQuantity:   WholesaleQuantity(text),

		ReleaseDate:             ReleaseDate(text),
		ReservationReleaseDate:  ReservationReleaseDate(text),
		ReservationDeadline:     ReservationDeadline(text),
		ReservationShippingDate: ReservationShippingDate(text),

		Dimensions:        Dimensions(text),
		SingleProductSize: SingleProductSize(text),
		PackageSize:       PackageSize(text),
		InnerBoxSize:      InnerBoxSize(text),
		CartonSize:        CartonSize(text),
		Weight:            Weight(text),
		PackageType:       PackageType(text),
		ProtectiveFilm:    ProtectiveFilm(text),

		QuantityPerPack:  QuantityPerPack(text),
		CasePackQuantity: CasePackQuantity(text),
		InnerBoxGTIN:     InnerBoxGTIN(text),
		OuterBoxGTIN:     OuterBoxGTIN(text),

		Category:       Category(text),
		MajorCategory:  MajorCategory(text),
		MinorCategory:  MinorCategory(text),
		GenreName:      GenreName(text),
		Classification: Classification(text),
		InStore:        InStore(text),
		LotNumber:      LotNumber(text),

		Color:           Color(text),
		Material:        Material(text),
		Origin:          Origin(text),
		CountryOfOrigin: CountryOfOrigin(text),
		TargetAge:       TargetAge(text),
		Warranty:        Warranty(text),
		Description:     Description(text),

		ImageURLs: ImageURLs(text),
	}

	f.Brand = Brand(text, lines)
	f.Manufacturer = Manufacturer(text, f.Brand)
	return f
}
