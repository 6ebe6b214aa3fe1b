// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// ExtractedRecordCreate is the builder for creating a ExtractedRecord entity.
type ExtractedRecordCreate struct {
	config
	mutation *ExtractedRecordMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (erc *ExtractedRecordCreate) SetOwnerID(u uuid.UUID) *ExtractedRecordCreate {
	erc.mutation.SetOwnerID(u)
	return erc
}

// SetConversionJobID sets the "conversion_job_id" field.
func (erc *ExtractedRecordCreate) SetConversionJobID(u uuid.UUID) *ExtractedRecordCreate {
	erc.mutation.SetConversionJobID(u)
	return erc
}

// SetNillableConversionJobID sets the "conversion_job_id" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableConversionJobID(u *uuid.UUID) *ExtractedRecordCreate {
	if u != nil {
		erc.SetConversionJobID(*u)
	}
	return erc
}

// SetSourceFileID sets the "source_file_id" field.
func (erc *ExtractedRecordCreate) SetSourceFileID(u uuid.UUID) *ExtractedRecordCreate {
	erc.mutation.SetSourceFileID(u)
	return erc
}

// SetProductName sets the "product_name" field.
func (erc *ExtractedRecordCreate) SetProductName(s string) *ExtractedRecordCreate {
	erc.mutation.SetProductName(s)
	return erc
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableProductName(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetProductName(*s)
	}
	return erc
}

// SetSku sets the "sku" field.
func (erc *ExtractedRecordCreate) SetSku(s string) *ExtractedRecordCreate {
	erc.mutation.SetSku(s)
	return erc
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableSku(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetSku(*s)
	}
	return erc
}

// SetProductCode sets the "product_code" field.
func (erc *ExtractedRecordCreate) SetProductCode(s string) *ExtractedRecordCreate {
	erc.mutation.SetProductCode(s)
	return erc
}

// SetNillableProductCode sets the "product_code" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableProductCode(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetProductCode(*s)
	}
	return erc
}

// SetJanCode sets the "jan_code" field.
func (erc *ExtractedRecordCreate) SetJanCode(s string) *ExtractedRecordCreate {
	erc.mutation.SetJanCode(s)
	return erc
}

// SetNillableJanCode sets the "jan_code" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableJanCode(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetJanCode(*s)
	}
	return erc
}

// SetCharacterName sets the "character_name" field.
func (erc *ExtractedRecordCreate) SetCharacterName(s string) *ExtractedRecordCreate {
	erc.mutation.SetCharacterName(s)
	return erc
}

// SetNillableCharacterName sets the "character_name" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableCharacterName(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetCharacterName(*s)
	}
	return erc
}

// SetBrand sets the "brand" field.
func (erc *ExtractedRecordCreate) SetBrand(s string) *ExtractedRecordCreate {
	erc.mutation.SetBrand(s)
	return erc
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableBrand(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetBrand(*s)
	}
	return erc
}

// SetManufacturer sets the "manufacturer" field.
func (erc *ExtractedRecordCreate) SetManufacturer(s string) *ExtractedRecordCreate {
	erc.mutation.SetManufacturer(s)
	return erc
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableManufacturer(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetManufacturer(*s)
	}
	return erc
}

// SetSupplierName sets the "supplier_name" field.
func (erc *ExtractedRecordCreate) SetSupplierName(s string) *ExtractedRecordCreate {
	erc.mutation.SetSupplierName(s)
	return erc
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableSupplierName(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetSupplierName(*s)
	}
	return erc
}

// SetIPName sets the "ip_name" field.
func (erc *ExtractedRecordCreate) SetIPName(s string) *ExtractedRecordCreate {
	erc.mutation.SetIPName(s)
	return erc
}

// SetNillableIPName sets the "ip_name" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableIPName(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetIPName(*s)
	}
	return erc
}

// SetPrice sets the "price" field.
func (erc *ExtractedRecordCreate) SetPrice(f float64) *ExtractedRecordCreate {
	erc.mutation.SetPrice(f)
	return erc
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillablePrice(f *float64) *ExtractedRecordCreate {
	if f != nil {
		erc.SetPrice(*f)
	}
	return erc
}

// SetReferenceSalesPrice sets the "reference_sales_price" field.
func (erc *ExtractedRecordCreate) SetReferenceSalesPrice(f float64) *ExtractedRecordCreate {
	erc.mutation.SetReferenceSalesPrice(f)
	return erc
}

// SetNillableReferenceSalesPrice sets the "reference_sales_price" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableReferenceSalesPrice(f *float64) *ExtractedRecordCreate {
	if f != nil {
		erc.SetReferenceSalesPrice(*f)
	}
	return erc
}

// SetWholesalePrice sets the "wholesale_price" field.
func (erc *ExtractedRecordCreate) SetWholesalePrice(f float64) *ExtractedRecordCreate {
	erc.mutation.SetWholesalePrice(f)
	return erc
}

// SetNillableWholesalePrice sets the "wholesale_price" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableWholesalePrice(f *float64) *ExtractedRecordCreate {
	if f != nil {
		erc.SetWholesalePrice(*f)
	}
	return erc
}

// SetOrderAmount sets the "order_amount" field.
func (erc *ExtractedRecordCreate) SetOrderAmount(f float64) *ExtractedRecordCreate {
	erc.mutation.SetOrderAmount(f)
	return erc
}

// SetNillableOrderAmount sets the "order_amount" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableOrderAmount(f *float64) *ExtractedRecordCreate {
	if f != nil {
		erc.SetOrderAmount(*f)
	}
	return erc
}

// SetStock sets the "stock" field.
func (erc *ExtractedRecordCreate) SetStock(i int) *ExtractedRecordCreate {
	erc.mutation.SetStock(i)
	return erc
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableStock(i *int) *ExtractedRecordCreate {
	if i != nil {
		erc.SetStock(*i)
	}
	return erc
}

// SetWholesaleQuantity sets the "wholesale_quantity" field.
func (erc *ExtractedRecordCreate) SetWholesaleQuantity(i int) *ExtractedRecordCreate {
	erc.mutation.SetWholesaleQuantity(i)
	return erc
}

// SetNillableWholesaleQuantity sets the "wholesale_quantity" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableWholesaleQuantity(i *int) *ExtractedRecordCreate {
	if i != nil {
		erc.SetWholesaleQuantity(*i)
	}
	return erc
}

// SetReleaseDate sets the "release_date" field.
func (erc *ExtractedRecordCreate) SetReleaseDate(s string) *ExtractedRecordCreate {
	erc.mutation.SetReleaseDate(s)
	return erc
}

// SetNillableReleaseDate sets the "release_date" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableReleaseDate(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetReleaseDate(*s)
	}
	return erc
}

// SetReservationReleaseDate sets the "reservation_release_date" field.
func (erc *ExtractedRecordCreate) SetReservationReleaseDate(s string) *ExtractedRecordCreate {
	erc.mutation.SetReservationReleaseDate(s)
	return erc
}

// SetNillableReservationReleaseDate sets the "reservation_release_date" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableReservationReleaseDate(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetReservationReleaseDate(*s)
	}
	return erc
}

// SetReservationDeadline sets the "reservation_deadline" field.
func (erc *ExtractedRecordCreate) SetReservationDeadline(s string) *ExtractedRecordCreate {
	erc.mutation.SetReservationDeadline(s)
	return erc
}

// SetNillableReservationDeadline sets the "reservation_deadline" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableReservationDeadline(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetReservationDeadline(*s)
	}
	return erc
}

// SetReservationShippingDate sets the "reservation_shipping_date" field.
func (erc *ExtractedRecordCreate) SetReservationShippingDate(s string) *ExtractedRecordCreate {
	erc.mutation.SetReservationShippingDate(s)
	return erc
}

// SetNillableReservationShippingDate sets the "reservation_shipping_date" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableReservationShippingDate(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetReservationShippingDate(*s)
	}
	return erc
}

// SetDimensions sets the "dimensions" field.
func (erc *ExtractedRecordCreate) SetDimensions(s string) *ExtractedRecordCreate {
	erc.mutation.SetDimensions(s)
	return erc
}

// SetNillableDimensions sets the "dimensions" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableDimensions(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetDimensions(*s)
	}
	return erc
}

// SetSingleProductSize sets the "single_product_size" field.
func (erc *ExtractedRecordCreate) SetSingleProductSize(s string) *ExtractedRecordCreate {
	erc.mutation.SetSingleProductSize(s)
	return erc
}

// SetNillableSingleProductSize sets the "single_product_size" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableSingleProductSize(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetSingleProductSize(*s)
	}
	return erc
}

// SetPackageSize sets the "package_size" field.
func (erc *ExtractedRecordCreate) SetPackageSize(s string) *ExtractedRecordCreate {
	erc.mutation.SetPackageSize(s)
	return erc
}

// SetNillablePackageSize sets the "package_size" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillablePackageSize(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetPackageSize(*s)
	}
	return erc
}

// SetInnerBoxSize sets the "inner_box_size" field.
func (erc *ExtractedRecordCreate) SetInnerBoxSize(s string) *ExtractedRecordCreate {
	erc.mutation.SetInnerBoxSize(s)
	return erc
}

// SetNillableInnerBoxSize sets the "inner_box_size" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableInnerBoxSize(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetInnerBoxSize(*s)
	}
	return erc
}

// SetCartonSize sets the "carton_size" field.
func (erc *ExtractedRecordCreate) SetCartonSize(s string) *ExtractedRecordCreate {
	erc.mutation.SetCartonSize(s)
	return erc
}

// SetNillableCartonSize sets the "carton_size" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableCartonSize(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetCartonSize(*s)
	}
	return erc
}

// SetWeight sets the "weight" field.
func (erc *ExtractedRecordCreate) SetWeight(s string) *ExtractedRecordCreate {
	erc.mutation.SetWeight(s)
	return erc
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableWeight(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetWeight(*s)
	}
	return erc
}

// SetPackageType sets the "package_type" field.
func (erc *ExtractedRecordCreate) SetPackageType(s string) *ExtractedRecordCreate {
	erc.mutation.SetPackageType(s)
	return erc
}

// SetNillablePackageType sets the "package_type" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillablePackageType(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetPackageType(*s)
	}
	return erc
}

// SetProtectiveFilm sets the "protective_film" field.
func (erc *ExtractedRecordCreate) SetProtectiveFilm(s string) *ExtractedRecordCreate {
	erc.mutation.SetProtectiveFilm(s)
	return erc
}

// SetNillableProtectiveFilm sets the "protective_film" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableProtectiveFilm(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetProtectiveFilm(*s)
	}
	return erc
}

// SetQuantityPerPack sets the "quantity_per_pack" field.
func (erc *ExtractedRecordCreate) SetQuantityPerPack(s string) *ExtractedRecordCreate {
	erc.mutation.SetQuantityPerPack(s)
	return erc
}

// SetNillableQuantityPerPack sets the "quantity_per_pack" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableQuantityPerPack(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetQuantityPerPack(*s)
	}
	return erc
}

// SetCasePackQuantity sets the "case_pack_quantity" field.
func (erc *ExtractedRecordCreate) SetCasePackQuantity(i int) *ExtractedRecordCreate {
	erc.mutation.SetCasePackQuantity(i)
	return erc
}

// SetNillableCasePackQuantity sets the "case_pack_quantity" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableCasePackQuantity(i *int) *ExtractedRecordCreate {
	if i != nil {
		erc.SetCasePackQuantity(*i)
	}
	return erc
}

// SetInnerBoxGtin sets the "inner_box_gtin" field.
func (erc *ExtractedRecordCreate) SetInnerBoxGtin(s string) *ExtractedRecordCreate {
	erc.mutation.SetInnerBoxGtin(s)
	return erc
}

// SetNillableInnerBoxGtin sets the "inner_box_gtin" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableInnerBoxGtin(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetInnerBoxGtin(*s)
	}
	return erc
}

// SetOuterBoxGtin sets the "outer_box_gtin" field.
func (erc *ExtractedRecordCreate) SetOuterBoxGtin(s string) *ExtractedRecordCreate {
	erc.mutation.SetOuterBoxGtin(s)
	return erc
}

// SetNillableOuterBoxGtin sets the "outer_box_gtin" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableOuterBoxGtin(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetOuterBoxGtin(*s)
	}
	return erc
}

// SetCategory sets the "category" field.
func (erc *ExtractedRecordCreate) SetCategory(s string) *ExtractedRecordCreate {
	erc.mutation.SetCategory(s)
	return erc
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableCategory(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetCategory(*s)
	}
	return erc
}

// SetMajorCategory sets the "major_category" field.
func (erc *ExtractedRecordCreate) SetMajorCategory(s string) *ExtractedRecordCreate {
	erc.mutation.SetMajorCategory(s)
	return erc
}

// SetNillableMajorCategory sets the "major_category" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableMajorCategory(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetMajorCategory(*s)
	}
	return erc
}

// SetMinorCategory sets the "minor_category" field.
func (erc *ExtractedRecordCreate) SetMinorCategory(s string) *ExtractedRecordCreate {
	erc.mutation.SetMinorCategory(s)
	return erc
}

// SetNillableMinorCategory sets the "minor_category" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableMinorCategory(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetMinorCategory(*s)
	}
	return erc
}

// SetGenreName sets the "genre_name" field.
func (erc *ExtractedRecordCreate) SetGenreName(s string) *ExtractedRecordCreate {
	erc.mutation.SetGenreName(s)
	return erc
}

// SetNillableGenreName sets the "genre_name" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableGenreName(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetGenreName(*s)
	}
	return erc
}

// SetClassification sets the "classification" field.
func (erc *ExtractedRecordCreate) SetClassification(s string) *ExtractedRecordCreate {
	erc.mutation.SetClassification(s)
	return erc
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableClassification(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetClassification(*s)
	}
	return erc
}

// SetInStore sets the "in_store" field.
func (erc *ExtractedRecordCreate) SetInStore(s string) *ExtractedRecordCreate {
	erc.mutation.SetInStore(s)
	return erc
}

// SetNillableInStore sets the "in_store" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableInStore(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetInStore(*s)
	}
	return erc
}

// SetLotNumber sets the "lot_number" field.
func (erc *ExtractedRecordCreate) SetLotNumber(s string) *ExtractedRecordCreate {
	erc.mutation.SetLotNumber(s)
	return erc
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableLotNumber(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetLotNumber(*s)
	}
	return erc
}

// SetColor sets the "color" field.
func (erc *ExtractedRecordCreate) SetColor(s string) *ExtractedRecordCreate {
	erc.mutation.SetColor(s)
	return erc
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableColor(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetColor(*s)
	}
	return erc
}

// SetMaterial sets the "material" field.
func (erc *ExtractedRecordCreate) SetMaterial(s string) *ExtractedRecordCreate {
	erc.mutation.SetMaterial(s)
	return erc
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableMaterial(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetMaterial(*s)
	}
	return erc
}

// SetOrigin sets the "origin" field.
func (erc *ExtractedRecordCreate) SetOrigin(s string) *ExtractedRecordCreate {
	erc.mutation.SetOrigin(s)
	return erc
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableOrigin(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetOrigin(*s)
	}
	return erc
}

// SetCountryOfOrigin sets the "country_of_origin" field.
func (erc *ExtractedRecordCreate) SetCountryOfOrigin(s string) *ExtractedRecordCreate {
	erc.mutation.SetCountryOfOrigin(s)
	return erc
}

// SetNillableCountryOfOrigin sets the "country_of_origin" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableCountryOfOrigin(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetCountryOfOrigin(*s)
	}
	return erc
}

// SetTargetAge sets the "target_age" field.
func (erc *ExtractedRecordCreate) SetTargetAge(s string) *ExtractedRecordCreate {
	erc.mutation.SetTargetAge(s)
	return erc
}

// SetNillableTargetAge sets the "target_age" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableTargetAge(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetTargetAge(*s)
	}
	return erc
}

// SetWarranty sets the "warranty" field.
func (erc *ExtractedRecordCreate) SetWarranty(s string) *ExtractedRecordCreate {
	erc.mutation.SetWarranty(s)
	return erc
}

// SetNillableWarranty sets the "warranty" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableWarranty(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetWarranty(*s)
	}
	return erc
}

// SetDescription sets the "description" field.
func (erc *ExtractedRecordCreate) SetDescription(s string) *ExtractedRecordCreate {
	erc.mutation.SetDescription(s)
	return erc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableDescription(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetDescription(*s)
	}
	return erc
}

// SetImageUrls sets the "image_urls" field.
func (erc *ExtractedRecordCreate) SetImageUrls(s []string) *ExtractedRecordCreate {
	erc.mutation.SetImageUrls(s)
	return erc
}

// SetRawText sets the "raw_text" field.
func (erc *ExtractedRecordCreate) SetRawText(s string) *ExtractedRecordCreate {
	erc.mutation.SetRawText(s)
	return erc
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableRawText(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetRawText(*s)
	}
	return erc
}

// SetSectionText sets the "section_text" field.
func (erc *ExtractedRecordCreate) SetSectionText(s string) *ExtractedRecordCreate {
	erc.mutation.SetSectionText(s)
	return erc
}

// SetNillableSectionText sets the "section_text" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableSectionText(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetSectionText(*s)
	}
	return erc
}

// SetConfidenceScore sets the "confidence_score" field.
func (erc *ExtractedRecordCreate) SetConfidenceScore(f float32) *ExtractedRecordCreate {
	erc.mutation.SetConfidenceScore(f)
	return erc
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableConfidenceScore(f *float32) *ExtractedRecordCreate {
	if f != nil {
		erc.SetConfidenceScore(*f)
	}
	return erc
}

// SetStatus sets the "status" field.
func (erc *ExtractedRecordCreate) SetStatus(s string) *ExtractedRecordCreate {
	erc.mutation.SetStatus(s)
	return erc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableStatus(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetStatus(*s)
	}
	return erc
}

// SetNeedsReview sets the "needs_review" field.
func (erc *ExtractedRecordCreate) SetNeedsReview(b bool) *ExtractedRecordCreate {
	erc.mutation.SetNeedsReview(b)
	return erc
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableNeedsReview(b *bool) *ExtractedRecordCreate {
	if b != nil {
		erc.SetNeedsReview(*b)
	}
	return erc
}

// SetIsValidated sets the "is_validated" field.
func (erc *ExtractedRecordCreate) SetIsValidated(b bool) *ExtractedRecordCreate {
	erc.mutation.SetIsValidated(b)
	return erc
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableIsValidated(b *bool) *ExtractedRecordCreate {
	if b != nil {
		erc.SetIsValidated(*b)
	}
	return erc
}

// SetIsMultiProduct sets the "is_multi_product" field.
func (erc *ExtractedRecordCreate) SetIsMultiProduct(b bool) *ExtractedRecordCreate {
	erc.mutation.SetIsMultiProduct(b)
	return erc
}

// SetNillableIsMultiProduct sets the "is_multi_product" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableIsMultiProduct(b *bool) *ExtractedRecordCreate {
	if b != nil {
		erc.SetIsMultiProduct(*b)
	}
	return erc
}

// SetTotalProductsInFile sets the "total_products_in_file" field.
func (erc *ExtractedRecordCreate) SetTotalProductsInFile(i int) *ExtractedRecordCreate {
	erc.mutation.SetTotalProductsInFile(i)
	return erc
}

// SetNillableTotalProductsInFile sets the "total_products_in_file" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableTotalProductsInFile(i *int) *ExtractedRecordCreate {
	if i != nil {
		erc.SetTotalProductsInFile(*i)
	}
	return erc
}

// SetProductIndex sets the "product_index" field.
func (erc *ExtractedRecordCreate) SetProductIndex(i int) *ExtractedRecordCreate {
	erc.mutation.SetProductIndex(i)
	return erc
}

// SetNillableProductIndex sets the "product_index" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableProductIndex(i *int) *ExtractedRecordCreate {
	if i != nil {
		erc.SetProductIndex(*i)
	}
	return erc
}

// SetErrorMessage sets the "error_message" field.
func (erc *ExtractedRecordCreate) SetErrorMessage(s string) *ExtractedRecordCreate {
	erc.mutation.SetErrorMessage(s)
	return erc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableErrorMessage(s *string) *ExtractedRecordCreate {
	if s != nil {
		erc.SetErrorMessage(*s)
	}
	return erc
}

// SetCreatedAt sets the "created_at" field.
func (erc *ExtractedRecordCreate) SetCreatedAt(t time.Time) *ExtractedRecordCreate {
	erc.mutation.SetCreatedAt(t)
	return erc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableCreatedAt(t *time.Time) *ExtractedRecordCreate {
	if t != nil {
		erc.SetCreatedAt(*t)
	}
	return erc
}

// SetUpdatedAt sets the "updated_at" field.
func (erc *ExtractedRecordCreate) SetUpdatedAt(t time.Time) *ExtractedRecordCreate {
	erc.mutation.SetUpdatedAt(t)
	return erc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableUpdatedAt(t *time.Time) *ExtractedRecordCreate {
	if t != nil {
		erc.SetUpdatedAt(*t)
	}
	return erc
}

// SetID sets the "id" field.
func (erc *ExtractedRecordCreate) SetID(u uuid.UUID) *ExtractedRecordCreate {
	erc.mutation.SetID(u)
	return erc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableID(u *uuid.UUID) *ExtractedRecordCreate {
	if u != nil {
		erc.SetID(*u)
	}
	return erc
}

// SetJobID sets the "job" edge to the ConversionJob entity by ID.
func (erc *ExtractedRecordCreate) SetJobID(id uuid.UUID) *ExtractedRecordCreate {
	erc.mutation.SetJobID(id)
	return erc
}

// SetNillableJobID sets the "job" edge to the ConversionJob entity by ID if the given value is not nil.
func (erc *ExtractedRecordCreate) SetNillableJobID(id *uuid.UUID) *ExtractedRecordCreate {
	if id != nil {
		erc = erc.SetJobID(*id)
	}
	return erc
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (erc *ExtractedRecordCreate) SetJob(c *ConversionJob) *ExtractedRecordCreate {
	return erc.SetJobID(c.ID)
}

// SetFileID sets the "file" edge to the UploadFile entity by ID.
func (erc *ExtractedRecordCreate) SetFileID(id uuid.UUID) *ExtractedRecordCreate {
	erc.mutation.SetFileID(id)
	return erc
}

// SetFile sets the "file" edge to the UploadFile entity.
func (erc *ExtractedRecordCreate) SetFile(u *UploadFile) *ExtractedRecordCreate {
	return erc.SetFileID(u.ID)
}

// Mutation returns the ExtractedRecordMutation object of the builder.
func (erc *ExtractedRecordCreate) Mutation() *ExtractedRecordMutation {
	return erc.mutation
}

// Save creates the ExtractedRecord in the database.
func (erc *ExtractedRecordCreate) Save(ctx context.Context) (*ExtractedRecord, error) {
	erc.defaults()
	return withHooks(ctx, erc.sqlSave, erc.mutation, erc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (erc *ExtractedRecordCreate) SaveX(ctx context.Context) *ExtractedRecord {
	v, err := erc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (erc *ExtractedRecordCreate) Exec(ctx context.Context) error {
	_, err := erc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (erc *ExtractedRecordCreate) ExecX(ctx context.Context) {
	if err := erc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (erc *ExtractedRecordCreate) defaults() {
	if _, ok := erc.mutation.ConfidenceScore(); !ok {
		v := extractedrecord.DefaultConfidenceScore
		erc.mutation.SetConfidenceScore(v)
	}
	if _, ok := erc.mutation.Status(); !ok {
		v := extractedrecord.DefaultStatus
		erc.mutation.SetStatus(v)
	}
	if _, ok := erc.mutation.NeedsReview(); !ok {
		v := extractedrecord.DefaultNeedsReview
		erc.mutation.SetNeedsReview(v)
	}
	if _, ok := erc.mutation.IsValidated(); !ok {
		v := extractedrecord.DefaultIsValidated
		erc.mutation.SetIsValidated(v)
	}
	if _, ok := erc.mutation.IsMultiProduct(); !ok {
		v := extractedrecord.DefaultIsMultiProduct
		erc.mutation.SetIsMultiProduct(v)
	}
	if _, ok := erc.mutation.TotalProductsInFile(); !ok {
		v := extractedrecord.DefaultTotalProductsInFile
		erc.mutation.SetTotalProductsInFile(v)
	}
	if _, ok := erc.mutation.ProductIndex(); !ok {
		v := extractedrecord.DefaultProductIndex
		erc.mutation.SetProductIndex(v)
	}
	if _, ok := erc.mutation.CreatedAt(); !ok {
		v := extractedrecord.DefaultCreatedAt()
		erc.mutation.SetCreatedAt(v)
	}
	if _, ok := erc.mutation.UpdatedAt(); !ok {
		v := extractedrecord.DefaultUpdatedAt()
		erc.mutation.SetUpdatedAt(v)
	}
	if _, ok := erc.mutation.ID(); !ok {
		v := extractedrecord.DefaultID()
		erc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (erc *ExtractedRecordCreate) check() error {
	if _, ok := erc.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ExtractedRecord.owner_id"`)}
	}
	if _, ok := erc.mutation.SourceFileID(); !ok {
		return &ValidationError{Name: "source_file_id", err: errors.New(`ent: missing required field "ExtractedRecord.source_file_id"`)}
	}
	if _, ok := erc.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "ExtractedRecord.confidence_score"`)}
	}
	if _, ok := erc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractedRecord.status"`)}
	}
	if v, ok := erc.mutation.Status(); ok {
		if err := extractedrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.status": %w`, err)}
		}
	}
	if _, ok := erc.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "ExtractedRecord.needs_review"`)}
	}
	if _, ok := erc.mutation.IsValidated(); !ok {
		return &ValidationError{Name: "is_validated", err: errors.New(`ent: missing required field "ExtractedRecord.is_validated"`)}
	}
	if _, ok := erc.mutation.IsMultiProduct(); !ok {
		return &ValidationError{Name: "is_multi_product", err: errors.New(`ent: missing required field "ExtractedRecord.is_multi_product"`)}
	}
	if _, ok := erc.mutation.TotalProductsInFile(); !ok {
		return &ValidationError{Name: "total_products_in_file", err: errors.New(`ent: missing required field "ExtractedRecord.total_products_in_file"`)}
	}
	if v, ok := erc.mutation.TotalProductsInFile(); ok {
		if err := extractedrecord.TotalProductsInFileValidator(v); err != nil {
			return &ValidationError{Name: "total_products_in_file", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.total_products_in_file": %w`, err)}
		}
	}
	if _, ok := erc.mutation.ProductIndex(); !ok {
		return &ValidationError{Name: "product_index", err: errors.New(`ent: missing required field "ExtractedRecord.product_index"`)}
	}
	if v, ok := erc.mutation.ProductIndex(); ok {
		if err := extractedrecord.ProductIndexValidator(v); err != nil {
			return &ValidationError{Name: "product_index", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.product_index": %w`, err)}
		}
	}
	if _, ok := erc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedRecord.created_at"`)}
	}
	if _, ok := erc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractedRecord.updated_at"`)}
	}
	if len(erc.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "ExtractedRecord.file"`)}
	}
	return nil
}

func (erc *ExtractedRecordCreate) sqlSave(ctx context.Context) (*ExtractedRecord, error) {
	if err := erc.check(); err != nil {
		return nil, err
	}
	_node, _spec := erc.createSpec()
	if err := sqlgraph.CreateNode(ctx, erc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	erc.mutation.id = &_node.ID
	erc.mutation.done = true
	return _node, nil
}

func (erc *ExtractedRecordCreate) createSpec() (*ExtractedRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedRecord{config: erc.config}
		_spec = sqlgraph.NewCreateSpec(extractedrecord.Table, sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID))
	)
	if id, ok := erc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := erc.mutation.OwnerID(); ok {
		_spec.SetField(extractedrecord.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := erc.mutation.ProductName(); ok {
		_spec.SetField(extractedrecord.FieldProductName, field.TypeString, value)
		_node.ProductName = &value
	}
	if value, ok := erc.mutation.Sku(); ok {
		_spec.SetField(extractedrecord.FieldSku, field.TypeString, value)
		_node.Sku = &value
	}
	if value, ok := erc.mutation.ProductCode(); ok {
		_spec.SetField(extractedrecord.FieldProductCode, field.TypeString, value)
		_node.ProductCode = &value
	}
	if value, ok := erc.mutation.JanCode(); ok {
		_spec.SetField(extractedrecord.FieldJanCode, field.TypeString, value)
		_node.JanCode = &value
	}
	if value, ok := erc.mutation.CharacterName(); ok {
		_spec.SetField(extractedrecord.FieldCharacterName, field.TypeString, value)
		_node.CharacterName = &value
	}
	if value, ok := erc.mutation.Brand(); ok {
		_spec.SetField(extractedrecord.FieldBrand, field.TypeString, value)
		_node.Brand = &value
	}
	if value, ok := erc.mutation.Manufacturer(); ok {
		_spec.SetField(extractedrecord.FieldManufacturer, field.TypeString, value)
		_node.Manufacturer = &value
	}
	if value, ok := erc.mutation.SupplierName(); ok {
		_spec.SetField(extractedrecord.FieldSupplierName, field.TypeString, value)
		_node.SupplierName = &value
	}
	if value, ok := erc.mutation.IPName(); ok {
		_spec.SetField(extractedrecord.FieldIPName, field.TypeString, value)
		_node.IPName = &value
	}
	if value, ok := erc.mutation.Price(); ok {
		_spec.SetField(extractedrecord.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := erc.mutation.ReferenceSalesPrice(); ok {
		_spec.SetField(extractedrecord.FieldReferenceSalesPrice, field.TypeFloat64, value)
		_node.ReferenceSalesPrice = &value
	}
	if value, ok := erc.mutation.WholesalePrice(); ok {
		_spec.SetField(extractedrecord.FieldWholesalePrice, field.TypeFloat64, value)
		_node.WholesalePrice = &value
	}
	if value, ok := erc.mutation.OrderAmount(); ok {
		_spec.SetField(extractedrecord.FieldOrderAmount, field.TypeFloat64, value)
		_node.OrderAmount = &value
	}
	if value, ok := erc.mutation.Stock(); ok {
		_spec.SetField(extractedrecord.FieldStock, field.TypeInt, value)
		_node.Stock = &value
	}
	if value, ok := erc.mutation.WholesaleQuantity(); ok {
		_spec.SetField(extractedrecord.FieldWholesaleQuantity, field.TypeInt, value)
		_node.WholesaleQuantity = &value
	}
	if value, ok := erc.mutation.ReleaseDate(); ok {
		_spec.SetField(extractedrecord.FieldReleaseDate, field.TypeString, value)
		_node.ReleaseDate = &value
	}
	if value, ok := erc.mutation.ReservationReleaseDate(); ok {
		_spec.SetField(extractedrecord.FieldReservationReleaseDate, field.TypeString, value)
		_node.ReservationReleaseDate = &value
	}
	if value, ok := erc.mutation.ReservationDeadline(); ok {
		_spec.SetField(extractedrecord.FieldReservationDeadline, field.TypeString, value)
		_node.ReservationDeadline = &value
	}
	if value, ok := erc.mutation.ReservationShippingDate(); ok {
		_spec.SetField(extractedrecord.FieldReservationShippingDate, field.TypeString, value)
		_node.ReservationShippingDate = &value
	}
	if value, ok := erc.mutation.Dimensions(); ok {
		_spec.SetField(extractedrecord.FieldDimensions, field.TypeString, value)
		_node.Dimensions = &value
	}
	if value, ok := erc.mutation.SingleProductSize(); ok {
		_spec.SetField(extractedrecord.FieldSingleProductSize, field.TypeString, value)
		_node.SingleProductSize = &value
	}
	if value, ok := erc.mutation.PackageSize(); ok {
		_spec.SetField(extractedrecord.FieldPackageSize, field.TypeString, value)
		_node.PackageSize = &value
	}
	if value, ok := erc.mutation.InnerBoxSize(); ok {
		_spec.SetField(extractedrecord.FieldInnerBoxSize, field.TypeString, value)
		_node.InnerBoxSize = &value
	}
	if value, ok := erc.mutation.CartonSize(); ok {
		_spec.SetField(extractedrecord.FieldCartonSize, field.TypeString, value)
		_node.CartonSize = &value
	}
	if value, ok := erc.mutation.Weight(); ok {
		_spec.SetField(extractedrecord.FieldWeight, field.TypeString, value)
		_node.Weight = &value
	}
	if value, ok := erc.mutation.PackageType(); ok {
		_spec.SetField(extractedrecord.FieldPackageType, field.TypeString, value)
		_node.PackageType = &value
	}
	if value, ok := erc.mutation.ProtectiveFilm(); ok {
		_spec.SetField(extractedrecord.FieldProtectiveFilm, field.TypeString, value)
		_node.ProtectiveFilm = &value
	}
	if value, ok := erc.mutation.QuantityPerPack(); ok {
		_spec.SetField(extractedrecord.FieldQuantityPerPack, field.TypeString, value)
		_node.QuantityPerPack = &value
	}
	if value, ok := erc.mutation.CasePackQuantity(); ok {
		_spec.SetField(extractedrecord.FieldCasePackQuantity, field.TypeInt, value)
		_node.CasePackQuantity = &value
	}
	if value, ok := erc.mutation.InnerBoxGtin(); ok {
		_spec.SetField(extractedrecord.FieldInnerBoxGtin, field.TypeString, value)
		_node.InnerBoxGtin = &value
	}
	if value, ok := erc.mutation.OuterBoxGtin(); ok {
		_spec.SetField(extractedrecord.FieldOuterBoxGtin, field.TypeString, value)
		_node.OuterBoxGtin = &value
	}
	if value, ok := erc.mutation.Category(); ok {
		_spec.SetField(extractedrecord.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := erc.mutation.MajorCategory(); ok {
		_spec.SetField(extractedrecord.FieldMajorCategory, field.TypeString, value)
		_node.MajorCategory = &value
	}
	if value, ok := erc.mutation.MinorCategory(); ok {
		_spec.SetField(extractedrecord.FieldMinorCategory, field.TypeString, value)
		_node.MinorCategory = &value
	}
	if value, ok := erc.mutation.GenreName(); ok {
		_spec.SetField(extractedrecord.FieldGenreName, field.TypeString, value)
		_node.GenreName = &value
	}
	if value, ok := erc.mutation.Classification(); ok {
		_spec.SetField(extractedrecord.FieldClassification, field.TypeString, value)
		_node.Classification = &value
	}
	if value, ok := erc.mutation.InStore(); ok {
		_spec.SetField(extractedrecord.FieldInStore, field.TypeString, value)
		_node.InStore = &value
	}
	if value, ok := erc.mutation.LotNumber(); ok {
		_spec.SetField(extractedrecord.FieldLotNumber, field.TypeString, value)
		_node.LotNumber = &value
	}
	if value, ok := erc.mutation.Color(); ok {
		_spec.SetField(extractedrecord.FieldColor, field.TypeString, value)
		_node.Color = &value
	}
	if value, ok := erc.mutation.Material(); ok {
		_spec.SetField(extractedrecord.FieldMaterial, field.TypeString, value)
		_node.Material = &value
	}
	if value, ok := erc.mutation.Origin(); ok {
		_spec.SetField(extractedrecord.FieldOrigin, field.TypeString, value)
		_node.Origin = &value
	}
	if value, ok := erc.mutation.CountryOfOrigin(); ok {
		_spec.SetField(extractedrecord.FieldCountryOfOrigin, field.TypeString, value)
		_node.CountryOfOrigin = &value
	}
	if value, ok := erc.mutation.TargetAge(); ok {
		_spec.SetField(extractedrecord.FieldTargetAge, field.TypeString, value)
		_node.TargetAge = &value
	}
	if value, ok := erc.mutation.Warranty(); ok {
		_spec.SetField(extractedrecord.FieldWarranty, field.TypeString, value)
		_node.Warranty = &value
	}
	if value, ok := erc.mutation.Description(); ok {
		_spec.SetField(extractedrecord.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := erc.mutation.ImageUrls(); ok {
		_spec.SetField(extractedrecord.FieldImageUrls, field.TypeJSON, value)
		_node.ImageUrls = value
	}
	if value, ok := erc.mutation.RawText(); ok {
		_spec.SetField(extractedrecord.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := erc.mutation.SectionText(); ok {
		_spec.SetField(extractedrecord.FieldSectionText, field.TypeString, value)
		_node.SectionText = value
	}
	if value, ok := erc.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractedrecord.FieldConfidenceScore, field.TypeFloat32, value)
		_node.ConfidenceScore = value
	}
	if value, ok := erc.mutation.Status(); ok {
		_spec.SetField(extractedrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := erc.mutation.NeedsReview(); ok {
		_spec.SetField(extractedrecord.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := erc.mutation.IsValidated(); ok {
		_spec.SetField(extractedrecord.FieldIsValidated, field.TypeBool, value)
		_node.IsValidated = value
	}
	if value, ok := erc.mutation.IsMultiProduct(); ok {
		_spec.SetField(extractedrecord.FieldIsMultiProduct, field.TypeBool, value)
		_node.IsMultiProduct = value
	}
	if value, ok := erc.mutation.TotalProductsInFile(); ok {
		_spec.SetField(extractedrecord.FieldTotalProductsInFile, field.TypeInt, value)
		_node.TotalProductsInFile = value
	}
	if value, ok := erc.mutation.ProductIndex(); ok {
		_spec.SetField(extractedrecord.FieldProductIndex, field.TypeInt, value)
		_node.ProductIndex = value
	}
	if value, ok := erc.mutation.ErrorMessage(); ok {
		_spec.SetField(extractedrecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := erc.mutation.CreatedAt(); ok {
		_spec.SetField(extractedrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := erc.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := erc.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedrecord.JobTable,
			Columns: []string{extractedrecord.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversionJobID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := erc.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedrecord.FileTable,
			Columns: []string{extractedrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceFileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedRecordCreateBulk is the builder for creating many ExtractedRecord entities in bulk.
type ExtractedRecordCreateBulk struct {
	config
	err      error
	builders []*ExtractedRecordCreate
}

// Save creates the ExtractedRecord entities in the database.
func (ercb *ExtractedRecordCreateBulk) Save(ctx context.Context) ([]*ExtractedRecord, error) {
	if ercb.err != nil {
		return nil, ercb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ercb.builders))
	nodes := make([]*ExtractedRecord, len(ercb.builders))
	mutators := make([]Mutator, len(ercb.builders))
	for i := range ercb.builders {
		func(i int, root context.Context) {
			builder := ercb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, ercb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ercb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, ercb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ercb *ExtractedRecordCreateBulk) SaveX(ctx context.Context) []*ExtractedRecord {
	v, err := ercb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ercb *ExtractedRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := ercb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ercb *ExtractedRecordCreateBulk) ExecX(ctx context.Context) {
	if err := ercb.Exec(ctx); err != nil {
		panic(err)
	}
}
