// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/gen/ent/predicate"
	"github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
)

// ExtractedRecordUpdate is the builder for updating ExtractedRecord entities.
type ExtractedRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedRecordMutation
}

// Where appends a list predicates to the ExtractedRecordUpdate builder.
func (eru *ExtractedRecordUpdate) Where(ps ...predicate.ExtractedRecord) *ExtractedRecordUpdate {
	eru.mutation.Where(ps...)
	return eru
}

// SetOwnerID sets the "owner_id" field.
func (eru *ExtractedRecordUpdate) SetOwnerID(u uuid.UUID) *ExtractedRecordUpdate {
	eru.mutation.SetOwnerID(u)
	return eru
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableOwnerID(u *uuid.UUID) *ExtractedRecordUpdate {
	if u != nil {
		eru.SetOwnerID(*u)
	}
	return eru
}

// SetConversionJobID sets the "conversion_job_id" field.
func (eru *ExtractedRecordUpdate) SetConversionJobID(u uuid.UUID) *ExtractedRecordUpdate {
	eru.mutation.SetConversionJobID(u)
	return eru
}

// SetNillableConversionJobID sets the "conversion_job_id" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableConversionJobID(u *uuid.UUID) *ExtractedRecordUpdate {
	if u != nil {
		eru.SetConversionJobID(*u)
	}
	return eru
}

// ClearConversionJobID clears the value of the "conversion_job_id" field.
func (eru *ExtractedRecordUpdate) ClearConversionJobID() *ExtractedRecordUpdate {
	eru.mutation.ClearConversionJobID()
	return eru
}

// SetSourceFileID sets the "source_file_id" field.
func (eru *ExtractedRecordUpdate) SetSourceFileID(u uuid.UUID) *ExtractedRecordUpdate {
	eru.mutation.SetSourceFileID(u)
	return eru
}

// SetNillableSourceFileID sets the "source_file_id" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableSourceFileID(u *uuid.UUID) *ExtractedRecordUpdate {
	if u != nil {
		eru.SetSourceFileID(*u)
	}
	return eru
}

// SetProductName sets the "product_name" field.
func (eru *ExtractedRecordUpdate) SetProductName(s string) *ExtractedRecordUpdate {
	eru.mutation.SetProductName(s)
	return eru
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableProductName(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetProductName(*s)
	}
	return eru
}

// ClearProductName clears the value of the "product_name" field.
func (eru *ExtractedRecordUpdate) ClearProductName() *ExtractedRecordUpdate {
	eru.mutation.ClearProductName()
	return eru
}

// SetSku sets the "sku" field.
func (eru *ExtractedRecordUpdate) SetSku(s string) *ExtractedRecordUpdate {
	eru.mutation.SetSku(s)
	return eru
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableSku(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetSku(*s)
	}
	return eru
}

// ClearSku clears the value of the "sku" field.
func (eru *ExtractedRecordUpdate) ClearSku() *ExtractedRecordUpdate {
	eru.mutation.ClearSku()
	return eru
}

// SetProductCode sets the "product_code" field.
func (eru *ExtractedRecordUpdate) SetProductCode(s string) *ExtractedRecordUpdate {
	eru.mutation.SetProductCode(s)
	return eru
}

// SetNillableProductCode sets the "product_code" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableProductCode(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetProductCode(*s)
	}
	return eru
}

// ClearProductCode clears the value of the "product_code" field.
func (eru *ExtractedRecordUpdate) ClearProductCode() *ExtractedRecordUpdate {
	eru.mutation.ClearProductCode()
	return eru
}

// SetJanCode sets the "jan_code" field.
func (eru *ExtractedRecordUpdate) SetJanCode(s string) *ExtractedRecordUpdate {
	eru.mutation.SetJanCode(s)
	return eru
}

// SetNillableJanCode sets the "jan_code" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableJanCode(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetJanCode(*s)
	}
	return eru
}

// ClearJanCode clears the value of the "jan_code" field.
func (eru *ExtractedRecordUpdate) ClearJanCode() *ExtractedRecordUpdate {
	eru.mutation.ClearJanCode()
	return eru
}

// SetCharacterName sets the "character_name" field.
func (eru *ExtractedRecordUpdate) SetCharacterName(s string) *ExtractedRecordUpdate {
	eru.mutation.SetCharacterName(s)
	return eru
}

// SetNillableCharacterName sets the "character_name" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableCharacterName(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetCharacterName(*s)
	}
	return eru
}

// ClearCharacterName clears the value of the "character_name" field.
func (eru *ExtractedRecordUpdate) ClearCharacterName() *ExtractedRecordUpdate {
	eru.mutation.ClearCharacterName()
	return eru
}

// SetBrand sets the "brand" field.
func (eru *ExtractedRecordUpdate) SetBrand(s string) *ExtractedRecordUpdate {
	eru.mutation.SetBrand(s)
	return eru
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableBrand(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetBrand(*s)
	}
	return eru
}

// ClearBrand clears the value of the "brand" field.
func (eru *ExtractedRecordUpdate) ClearBrand() *ExtractedRecordUpdate {
	eru.mutation.ClearBrand()
	return eru
}

// SetManufacturer sets the "manufacturer" field.
func (eru *ExtractedRecordUpdate) SetManufacturer(s string) *ExtractedRecordUpdate {
	eru.mutation.SetManufacturer(s)
	return eru
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableManufacturer(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetManufacturer(*s)
	}
	return eru
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (eru *ExtractedRecordUpdate) ClearManufacturer() *ExtractedRecordUpdate {
	eru.mutation.ClearManufacturer()
	return eru
}

// SetSupplierName sets the "supplier_name" field.
func (eru *ExtractedRecordUpdate) SetSupplierName(s string) *ExtractedRecordUpdate {
	eru.mutation.SetSupplierName(s)
	return eru
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableSupplierName(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetSupplierName(*s)
	}
	return eru
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (eru *ExtractedRecordUpdate) ClearSupplierName() *ExtractedRecordUpdate {
	eru.mutation.ClearSupplierName()
	return eru
}

// SetIPName sets the "ip_name" field.
func (eru *ExtractedRecordUpdate) SetIPName(s string) *ExtractedRecordUpdate {
	eru.mutation.SetIPName(s)
	return eru
}

// SetNillableIPName sets the "ip_name" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableIPName(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetIPName(*s)
	}
	return eru
}

// ClearIPName clears the value of the "ip_name" field.
func (eru *ExtractedRecordUpdate) ClearIPName() *ExtractedRecordUpdate {
	eru.mutation.ClearIPName()
	return eru
}

// SetPrice sets the "price" field.
func (eru *ExtractedRecordUpdate) SetPrice(f float64) *ExtractedRecordUpdate {
	eru.mutation.ResetPrice()
	eru.mutation.SetPrice(f)
	return eru
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillablePrice(f *float64) *ExtractedRecordUpdate {
	if f != nil {
		eru.SetPrice(*f)
	}
	return eru
}

// AddPrice adds f to the "price" field.
func (eru *ExtractedRecordUpdate) AddPrice(f float64) *ExtractedRecordUpdate {
	eru.mutation.AddPrice(f)
	return eru
}

// ClearPrice clears the value of the "price" field.
func (eru *ExtractedRecordUpdate) ClearPrice() *ExtractedRecordUpdate {
	eru.mutation.ClearPrice()
	return eru
}

// SetReferenceSalesPrice sets the "reference_sales_price" field.
func (eru *ExtractedRecordUpdate) SetReferenceSalesPrice(f float64) *ExtractedRecordUpdate {
	eru.mutation.ResetReferenceSalesPrice()
	eru.mutation.SetReferenceSalesPrice(f)
	return eru
}

// SetNillableReferenceSalesPrice sets the "reference_sales_price" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableReferenceSalesPrice(f *float64) *ExtractedRecordUpdate {
	if f != nil {
		eru.SetReferenceSalesPrice(*f)
	}
	return eru
}

// AddReferenceSalesPrice adds f to the "reference_sales_price" field.
func (eru *ExtractedRecordUpdate) AddReferenceSalesPrice(f float64) *ExtractedRecordUpdate {
	eru.mutation.AddReferenceSalesPrice(f)
	return eru
}

// ClearReferenceSalesPrice clears the value of the "reference_sales_price" field.
func (eru *ExtractedRecordUpdate) ClearReferenceSalesPrice() *ExtractedRecordUpdate {
	eru.mutation.ClearReferenceSalesPrice()
	return eru
}

// SetWholesalePrice sets the "wholesale_price" field.
func (eru *ExtractedRecordUpdate) SetWholesalePrice(f float64) *ExtractedRecordUpdate {
	eru.mutation.ResetWholesalePrice()
	eru.mutation.SetWholesalePrice(f)
	return eru
}

// SetNillableWholesalePrice sets the "wholesale_price" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableWholesalePrice(f *float64) *ExtractedRecordUpdate {
	if f != nil {
		eru.SetWholesalePrice(*f)
	}
	return eru
}

// AddWholesalePrice adds f to the "wholesale_price" field.
func (eru *ExtractedRecordUpdate) AddWholesalePrice(f float64) *ExtractedRecordUpdate {
	eru.mutation.AddWholesalePrice(f)
	return eru
}

// ClearWholesalePrice clears the value of the "wholesale_price" field.
func (eru *ExtractedRecordUpdate) ClearWholesalePrice() *ExtractedRecordUpdate {
	eru.mutation.ClearWholesalePrice()
	return eru
}

// SetOrderAmount sets the "order_amount" field.
func (eru *ExtractedRecordUpdate) SetOrderAmount(f float64) *ExtractedRecordUpdate {
	eru.mutation.ResetOrderAmount()
	eru.mutation.SetOrderAmount(f)
	return eru
}

// SetNillableOrderAmount sets the "order_amount" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableOrderAmount(f *float64) *ExtractedRecordUpdate {
	if f != nil {
		eru.SetOrderAmount(*f)
	}
	return eru
}

// AddOrderAmount adds f to the "order_amount" field.
func (eru *ExtractedRecordUpdate) AddOrderAmount(f float64) *ExtractedRecordUpdate {
	eru.mutation.AddOrderAmount(f)
	return eru
}

// ClearOrderAmount clears the value of the "order_amount" field.
func (eru *ExtractedRecordUpdate) ClearOrderAmount() *ExtractedRecordUpdate {
	eru.mutation.ClearOrderAmount()
	return eru
}

// SetStock sets the "stock" field.
func (eru *ExtractedRecordUpdate) SetStock(i int) *ExtractedRecordUpdate {
	eru.mutation.ResetStock()
	eru.mutation.SetStock(i)
	return eru
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableStock(i *int) *ExtractedRecordUpdate {
	if i != nil {
		eru.SetStock(*i)
	}
	return eru
}

// AddStock adds i to the "stock" field.
func (eru *ExtractedRecordUpdate) AddStock(i int) *ExtractedRecordUpdate {
	eru.mutation.AddStock(i)
	return eru
}

// ClearStock clears the value of the "stock" field.
func (eru *ExtractedRecordUpdate) ClearStock() *ExtractedRecordUpdate {
	eru.mutation.ClearStock()
	return eru
}

// SetWholesaleQuantity sets the "wholesale_quantity" field.
func (eru *ExtractedRecordUpdate) SetWholesaleQuantity(i int) *ExtractedRecordUpdate {
	eru.mutation.ResetWholesaleQuantity()
	eru.mutation.SetWholesaleQuantity(i)
	return eru
}

// SetNillableWholesaleQuantity sets the "wholesale_quantity" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableWholesaleQuantity(i *int) *ExtractedRecordUpdate {
	if i != nil {
		eru.SetWholesaleQuantity(*i)
	}
	return eru
}

// AddWholesaleQuantity adds i to the "wholesale_quantity" field.
func (eru *ExtractedRecordUpdate) AddWholesaleQuantity(i int) *ExtractedRecordUpdate {
	eru.mutation.AddWholesaleQuantity(i)
	return eru
}

// ClearWholesaleQuantity clears the value of the "wholesale_quantity" field.
func (eru *ExtractedRecordUpdate) ClearWholesaleQuantity() *ExtractedRecordUpdate {
	eru.mutation.ClearWholesaleQuantity()
	return eru
}

// SetReleaseDate sets the "release_date" field.
func (eru *ExtractedRecordUpdate) SetReleaseDate(s string) *ExtractedRecordUpdate {
	eru.mutation.SetReleaseDate(s)
	return eru
}

// SetNillableReleaseDate sets the "release_date" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableReleaseDate(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetReleaseDate(*s)
	}
	return eru
}

// ClearReleaseDate clears the value of the "release_date" field.
func (eru *ExtractedRecordUpdate) ClearReleaseDate() *ExtractedRecordUpdate {
	eru.mutation.ClearReleaseDate()
	return eru
}

// SetReservationReleaseDate sets the "reservation_release_date" field.
func (eru *ExtractedRecordUpdate) SetReservationReleaseDate(s string) *ExtractedRecordUpdate {
	eru.mutation.SetReservationReleaseDate(s)
	return eru
}

// SetNillableReservationReleaseDate sets the "reservation_release_date" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableReservationReleaseDate(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetReservationReleaseDate(*s)
	}
	return eru
}

// ClearReservationReleaseDate clears the value of the "reservation_release_date" field.
func (eru *ExtractedRecordUpdate) ClearReservationReleaseDate() *ExtractedRecordUpdate {
	eru.mutation.ClearReservationReleaseDate()
	return eru
}

// SetReservationDeadline sets the "reservation_deadline" field.
func (eru *ExtractedRecordUpdate) SetReservationDeadline(s string) *ExtractedRecordUpdate {
	eru.mutation.SetReservationDeadline(s)
	return eru
}

// SetNillableReservationDeadline sets the "reservation_deadline" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableReservationDeadline(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetReservationDeadline(*s)
	}
	return eru
}

// ClearReservationDeadline clears the value of the "reservation_deadline" field.
func (eru *ExtractedRecordUpdate) ClearReservationDeadline() *ExtractedRecordUpdate {
	eru.mutation.ClearReservationDeadline()
	return eru
}

// SetReservationShippingDate sets the "reservation_shipping_date" field.
func (eru *ExtractedRecordUpdate) SetReservationShippingDate(s string) *ExtractedRecordUpdate {
	eru.mutation.SetReservationShippingDate(s)
	return eru
}

// SetNillableReservationShippingDate sets the "reservation_shipping_date" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableReservationShippingDate(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetReservationShippingDate(*s)
	}
	return eru
}

// ClearReservationShippingDate clears the value of the "reservation_shipping_date" field.
func (eru *ExtractedRecordUpdate) ClearReservationShippingDate() *ExtractedRecordUpdate {
	eru.mutation.ClearReservationShippingDate()
	return eru
}

// SetDimensions sets the "dimensions" field.
func (eru *ExtractedRecordUpdate) SetDimensions(s string) *ExtractedRecordUpdate {
	eru.mutation.SetDimensions(s)
	return eru
}

// SetNillableDimensions sets the "dimensions" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableDimensions(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetDimensions(*s)
	}
	return eru
}

// ClearDimensions clears the value of the "dimensions" field.
func (eru *ExtractedRecordUpdate) ClearDimensions() *ExtractedRecordUpdate {
	eru.mutation.ClearDimensions()
	return eru
}

// SetSingleProductSize sets the "single_product_size" field.
func (eru *ExtractedRecordUpdate) SetSingleProductSize(s string) *ExtractedRecordUpdate {
	eru.mutation.SetSingleProductSize(s)
	return eru
}

// SetNillableSingleProductSize sets the "single_product_size" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableSingleProductSize(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetSingleProductSize(*s)
	}
	return eru
}

// ClearSingleProductSize clears the value of the "single_product_size" field.
func (eru *ExtractedRecordUpdate) ClearSingleProductSize() *ExtractedRecordUpdate {
	eru.mutation.ClearSingleProductSize()
	return eru
}

// SetPackageSize sets the "package_size" field.
func (eru *ExtractedRecordUpdate) SetPackageSize(s string) *ExtractedRecordUpdate {
	eru.mutation.SetPackageSize(s)
	return eru
}

// SetNillablePackageSize sets the "package_size" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillablePackageSize(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetPackageSize(*s)
	}
	return eru
}

// ClearPackageSize clears the value of the "package_size" field.
func (eru *ExtractedRecordUpdate) ClearPackageSize() *ExtractedRecordUpdate {
	eru.mutation.ClearPackageSize()
	return eru
}

// SetInnerBoxSize sets the "inner_box_size" field.
func (eru *ExtractedRecordUpdate) SetInnerBoxSize(s string) *ExtractedRecordUpdate {
	eru.mutation.SetInnerBoxSize(s)
	return eru
}

// SetNillableInnerBoxSize sets the "inner_box_size" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableInnerBoxSize(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetInnerBoxSize(*s)
	}
	return eru
}

// ClearInnerBoxSize clears the value of the "inner_box_size" field.
func (eru *ExtractedRecordUpdate) ClearInnerBoxSize() *ExtractedRecordUpdate {
	eru.mutation.ClearInnerBoxSize()
	return eru
}

// SetCartonSize sets the "carton_size" field.
func (eru *ExtractedRecordUpdate) SetCartonSize(s string) *ExtractedRecordUpdate {
	eru.mutation.SetCartonSize(s)
	return eru
}

// SetNillableCartonSize sets the "carton_size" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableCartonSize(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetCartonSize(*s)
	}
	return eru
}

// ClearCartonSize clears the value of the "carton_size" field.
func (eru *ExtractedRecordUpdate) ClearCartonSize() *ExtractedRecordUpdate {
	eru.mutation.ClearCartonSize()
	return eru
}

// SetWeight sets the "weight" field.
func (eru *ExtractedRecordUpdate) SetWeight(s string) *ExtractedRecordUpdate {
	eru.mutation.SetWeight(s)
	return eru
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableWeight(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetWeight(*s)
	}
	return eru
}

// ClearWeight clears the value of the "weight" field.
func (eru *ExtractedRecordUpdate) ClearWeight() *ExtractedRecordUpdate {
	eru.mutation.ClearWeight()
	return eru
}

// SetPackageType sets the "package_type" field.
func (eru *ExtractedRecordUpdate) SetPackageType(s string) *ExtractedRecordUpdate {
	eru.mutation.SetPackageType(s)
	return eru
}

// SetNillablePackageType sets the "package_type" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillablePackageType(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetPackageType(*s)
	}
	return eru
}

// ClearPackageType clears the value of the "package_type" field.
func (eru *ExtractedRecordUpdate) ClearPackageType() *ExtractedRecordUpdate {
	eru.mutation.ClearPackageType()
	return eru
}

// SetProtectiveFilm sets the "protective_film" field.
func (eru *ExtractedRecordUpdate) SetProtectiveFilm(s string) *ExtractedRecordUpdate {
	eru.mutation.SetProtectiveFilm(s)
	return eru
}

// SetNillableProtectiveFilm sets the "protective_film" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableProtectiveFilm(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetProtectiveFilm(*s)
	}
	return eru
}

// ClearProtectiveFilm clears the value of the "protective_film" field.
func (eru *ExtractedRecordUpdate) ClearProtectiveFilm() *ExtractedRecordUpdate {
	eru.mutation.ClearProtectiveFilm()
	return eru
}

// SetQuantityPerPack sets the "quantity_per_pack" field.
func (eru *ExtractedRecordUpdate) SetQuantityPerPack(s string) *ExtractedRecordUpdate {
	eru.mutation.SetQuantityPerPack(s)
	return eru
}

// SetNillableQuantityPerPack sets the "quantity_per_pack" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableQuantityPerPack(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetQuantityPerPack(*s)
	}
	return eru
}

// ClearQuantityPerPack clears the value of the "quantity_per_pack" field.
func (eru *ExtractedRecordUpdate) ClearQuantityPerPack() *ExtractedRecordUpdate {
	eru.mutation.ClearQuantityPerPack()
	return eru
}

// SetCasePackQuantity sets the "case_pack_quantity" field.
func (eru *ExtractedRecordUpdate) SetCasePackQuantity(i int) *ExtractedRecordUpdate {
	eru.mutation.ResetCasePackQuantity()
	eru.mutation.SetCasePackQuantity(i)
	return eru
}

// SetNillableCasePackQuantity sets the "case_pack_quantity" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableCasePackQuantity(i *int) *ExtractedRecordUpdate {
	if i != nil {
		eru.SetCasePackQuantity(*i)
	}
	return eru
}

// AddCasePackQuantity adds i to the "case_pack_quantity" field.
func (eru *ExtractedRecordUpdate) AddCasePackQuantity(i int) *ExtractedRecordUpdate {
	eru.mutation.AddCasePackQuantity(i)
	return eru
}

// ClearCasePackQuantity clears the value of the "case_pack_quantity" field.
func (eru *ExtractedRecordUpdate) ClearCasePackQuantity() *ExtractedRecordUpdate {
	eru.mutation.ClearCasePackQuantity()
	return eru
}

// SetInnerBoxGtin sets the "inner_box_gtin" field.
func (eru *ExtractedRecordUpdate) SetInnerBoxGtin(s string) *ExtractedRecordUpdate {
	eru.mutation.SetInnerBoxGtin(s)
	return eru
}

// SetNillableInnerBoxGtin sets the "inner_box_gtin" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableInnerBoxGtin(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetInnerBoxGtin(*s)
	}
	return eru
}

// ClearInnerBoxGtin clears the value of the "inner_box_gtin" field.
func (eru *ExtractedRecordUpdate) ClearInnerBoxGtin() *ExtractedRecordUpdate {
	eru.mutation.ClearInnerBoxGtin()
	return eru
}

// SetOuterBoxGtin sets the "outer_box_gtin" field.
func (eru *ExtractedRecordUpdate) SetOuterBoxGtin(s string) *ExtractedRecordUpdate {
	eru.mutation.SetOuterBoxGtin(s)
	return eru
}

// SetNillableOuterBoxGtin sets the "outer_box_gtin" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableOuterBoxGtin(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetOuterBoxGtin(*s)
	}
	return eru
}

// ClearOuterBoxGtin clears the value of the "outer_box_gtin" field.
func (eru *ExtractedRecordUpdate) ClearOuterBoxGtin() *ExtractedRecordUpdate {
	eru.mutation.ClearOuterBoxGtin()
	return eru
}

// SetCategory sets the "category" field.
func (eru *ExtractedRecordUpdate) SetCategory(s string) *ExtractedRecordUpdate {
	eru.mutation.SetCategory(s)
	return eru
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableCategory(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetCategory(*s)
	}
	return eru
}

// ClearCategory clears the value of the "category" field.
func (eru *ExtractedRecordUpdate) ClearCategory() *ExtractedRecordUpdate {
	eru.mutation.ClearCategory()
	return eru
}

// SetMajorCategory sets the "major_category" field.
func (eru *ExtractedRecordUpdate) SetMajorCategory(s string) *ExtractedRecordUpdate {
	eru.mutation.SetMajorCategory(s)
	return eru
}

// SetNillableMajorCategory sets the "major_category" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableMajorCategory(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetMajorCategory(*s)
	}
	return eru
}

// ClearMajorCategory clears the value of the "major_category" field.
func (eru *ExtractedRecordUpdate) ClearMajorCategory() *ExtractedRecordUpdate {
	eru.mutation.ClearMajorCategory()
	return eru
}

// SetMinorCategory sets the "minor_category" field.
func (eru *ExtractedRecordUpdate) SetMinorCategory(s string) *ExtractedRecordUpdate {
	eru.mutation.SetMinorCategory(s)
	return eru
}

// SetNillableMinorCategory sets the "minor_category" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableMinorCategory(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetMinorCategory(*s)
	}
	return eru
}

// ClearMinorCategory clears the value of the "minor_category" field.
func (eru *ExtractedRecordUpdate) ClearMinorCategory() *ExtractedRecordUpdate {
	eru.mutation.ClearMinorCategory()
	return eru
}

// SetGenreName sets the "genre_name" field.
func (eru *ExtractedRecordUpdate) SetGenreName(s string) *ExtractedRecordUpdate {
	eru.mutation.SetGenreName(s)
	return eru
}

// SetNillableGenreName sets the "genre_name" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableGenreName(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetGenreName(*s)
	}
	return eru
}

// ClearGenreName clears the value of the "genre_name" field.
func (eru *ExtractedRecordUpdate) ClearGenreName() *ExtractedRecordUpdate {
	eru.mutation.ClearGenreName()
	return eru
}

// SetClassification sets the "classification" field.
func (eru *ExtractedRecordUpdate) SetClassification(s string) *ExtractedRecordUpdate {
	eru.mutation.SetClassification(s)
	return eru
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableClassification(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetClassification(*s)
	}
	return eru
}

// ClearClassification clears the value of the "classification" field.
func (eru *ExtractedRecordUpdate) ClearClassification() *ExtractedRecordUpdate {
	eru.mutation.ClearClassification()
	return eru
}

// SetInStore sets the "in_store" field.
func (eru *ExtractedRecordUpdate) SetInStore(s string) *ExtractedRecordUpdate {
	eru.mutation.SetInStore(s)
	return eru
}

// SetNillableInStore sets the "in_store" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableInStore(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetInStore(*s)
	}
	return eru
}

// ClearInStore clears the value of the "in_store" field.
func (eru *ExtractedRecordUpdate) ClearInStore() *ExtractedRecordUpdate {
	eru.mutation.ClearInStore()
	return eru
}

// SetLotNumber sets the "lot_number" field.
func (eru *ExtractedRecordUpdate) SetLotNumber(s string) *ExtractedRecordUpdate {
	eru.mutation.SetLotNumber(s)
	return eru
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableLotNumber(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetLotNumber(*s)
	}
	return eru
}

// ClearLotNumber clears the value of the "lot_number" field.
func (eru *ExtractedRecordUpdate) ClearLotNumber() *ExtractedRecordUpdate {
	eru.mutation.ClearLotNumber()
	return eru
}

// SetColor sets the "color" field.
func (eru *ExtractedRecordUpdate) SetColor(s string) *ExtractedRecordUpdate {
	eru.mutation.SetColor(s)
	return eru
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableColor(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetColor(*s)
	}
	return eru
}

// ClearColor clears the value of the "color" field.
func (eru *ExtractedRecordUpdate) ClearColor() *ExtractedRecordUpdate {
	eru.mutation.ClearColor()
	return eru
}

// SetMaterial sets the "material" field.
func (eru *ExtractedRecordUpdate) SetMaterial(s string) *ExtractedRecordUpdate {
	eru.mutation.SetMaterial(s)
	return eru
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableMaterial(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetMaterial(*s)
	}
	return eru
}

// ClearMaterial clears the value of the "material" field.
func (eru *ExtractedRecordUpdate) ClearMaterial() *ExtractedRecordUpdate {
	eru.mutation.ClearMaterial()
	return eru
}

// SetOrigin sets the "origin" field.
func (eru *ExtractedRecordUpdate) SetOrigin(s string) *ExtractedRecordUpdate {
	eru.mutation.SetOrigin(s)
	return eru
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableOrigin(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetOrigin(*s)
	}
	return eru
}

// ClearOrigin clears the value of the "origin" field.
func (eru *ExtractedRecordUpdate) ClearOrigin() *ExtractedRecordUpdate {
	eru.mutation.ClearOrigin()
	return eru
}

// SetCountryOfOrigin sets the "country_of_origin" field.
func (eru *ExtractedRecordUpdate) SetCountryOfOrigin(s string) *ExtractedRecordUpdate {
	eru.mutation.SetCountryOfOrigin(s)
	return eru
}

// SetNillableCountryOfOrigin sets the "country_of_origin" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableCountryOfOrigin(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetCountryOfOrigin(*s)
	}
	return eru
}

// ClearCountryOfOrigin clears the value of the "country_of_origin" field.
func (eru *ExtractedRecordUpdate) ClearCountryOfOrigin() *ExtractedRecordUpdate {
	eru.mutation.ClearCountryOfOrigin()
	return eru
}

// SetTargetAge sets the "target_age" field.
func (eru *ExtractedRecordUpdate) SetTargetAge(s string) *ExtractedRecordUpdate {
	eru.mutation.SetTargetAge(s)
	return eru
}

// SetNillableTargetAge sets the "target_age" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableTargetAge(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetTargetAge(*s)
	}
	return eru
}

// ClearTargetAge clears the value of the "target_age" field.
func (eru *ExtractedRecordUpdate) ClearTargetAge() *ExtractedRecordUpdate {
	eru.mutation.ClearTargetAge()
	return eru
}

// SetWarranty sets the "warranty" field.
func (eru *ExtractedRecordUpdate) SetWarranty(s string) *ExtractedRecordUpdate {
	eru.mutation.SetWarranty(s)
	return eru
}

// SetNillableWarranty sets the "warranty" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableWarranty(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetWarranty(*s)
	}
	return eru
}

// ClearWarranty clears the value of the "warranty" field.
func (eru *ExtractedRecordUpdate) ClearWarranty() *ExtractedRecordUpdate {
	eru.mutation.ClearWarranty()
	return eru
}

// SetDescription sets the "description" field.
func (eru *ExtractedRecordUpdate) SetDescription(s string) *ExtractedRecordUpdate {
	eru.mutation.SetDescription(s)
	return eru
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableDescription(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetDescription(*s)
	}
	return eru
}

// ClearDescription clears the value of the "description" field.
func (eru *ExtractedRecordUpdate) ClearDescription() *ExtractedRecordUpdate {
	eru.mutation.ClearDescription()
	return eru
}

// SetImageUrls sets the "image_urls" field.
func (eru *ExtractedRecordUpdate) SetImageUrls(s []string) *ExtractedRecordUpdate {
	eru.mutation.SetImageUrls(s)
	return eru
}

// AppendImageUrls appends s to the "image_urls" field.
func (eru *ExtractedRecordUpdate) AppendImageUrls(s []string) *ExtractedRecordUpdate {
	eru.mutation.AppendImageUrls(s)
	return eru
}

// ClearImageUrls clears the value of the "image_urls" field.
func (eru *ExtractedRecordUpdate) ClearImageUrls() *ExtractedRecordUpdate {
	eru.mutation.ClearImageUrls()
	return eru
}

// SetRawText sets the "raw_text" field.
func (eru *ExtractedRecordUpdate) SetRawText(s string) *ExtractedRecordUpdate {
	eru.mutation.SetRawText(s)
	return eru
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableRawText(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetRawText(*s)
	}
	return eru
}

// ClearRawText clears the value of the "raw_text" field.
func (eru *ExtractedRecordUpdate) ClearRawText() *ExtractedRecordUpdate {
	eru.mutation.ClearRawText()
	return eru
}

// SetSectionText sets the "section_text" field.
func (eru *ExtractedRecordUpdate) SetSectionText(s string) *ExtractedRecordUpdate {
	eru.mutation.SetSectionText(s)
	return eru
}

// SetNillableSectionText sets the "section_text" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableSectionText(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetSectionText(*s)
	}
	return eru
}

// ClearSectionText clears the value of the "section_text" field.
func (eru *ExtractedRecordUpdate) ClearSectionText() *ExtractedRecordUpdate {
	eru.mutation.ClearSectionText()
	return eru
}

// SetConfidenceScore sets the "confidence_score" field.
func (eru *ExtractedRecordUpdate) SetConfidenceScore(f float32) *ExtractedRecordUpdate {
	eru.mutation.ResetConfidenceScore()
	eru.mutation.SetConfidenceScore(f)
	return eru
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableConfidenceScore(f *float32) *ExtractedRecordUpdate {
	if f != nil {
		eru.SetConfidenceScore(*f)
	}
	return eru
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (eru *ExtractedRecordUpdate) AddConfidenceScore(f float32) *ExtractedRecordUpdate {
	eru.mutation.AddConfidenceScore(f)
	return eru
}

// SetStatus sets the "status" field.
func (eru *ExtractedRecordUpdate) SetStatus(s string) *ExtractedRecordUpdate {
	eru.mutation.SetStatus(s)
	return eru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableStatus(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetStatus(*s)
	}
	return eru
}

// SetNeedsReview sets the "needs_review" field.
func (eru *ExtractedRecordUpdate) SetNeedsReview(b bool) *ExtractedRecordUpdate {
	eru.mutation.SetNeedsReview(b)
	return eru
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableNeedsReview(b *bool) *ExtractedRecordUpdate {
	if b != nil {
		eru.SetNeedsReview(*b)
	}
	return eru
}

// SetIsValidated sets the "is_validated" field.
func (eru *ExtractedRecordUpdate) SetIsValidated(b bool) *ExtractedRecordUpdate {
	eru.mutation.SetIsValidated(b)
	return eru
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableIsValidated(b *bool) *ExtractedRecordUpdate {
	if b != nil {
		eru.SetIsValidated(*b)
	}
	return eru
}

// SetIsMultiProduct sets the "is_multi_product" field.
func (eru *ExtractedRecordUpdate) SetIsMultiProduct(b bool) *ExtractedRecordUpdate {
	eru.mutation.SetIsMultiProduct(b)
	return eru
}

// SetNillableIsMultiProduct sets the "is_multi_product" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableIsMultiProduct(b *bool) *ExtractedRecordUpdate {
	if b != nil {
		eru.SetIsMultiProduct(*b)
	}
	return eru
}

// SetTotalProductsInFile sets the "total_products_in_file" field.
func (eru *ExtractedRecordUpdate) SetTotalProductsInFile(i int) *ExtractedRecordUpdate {
	eru.mutation.ResetTotalProductsInFile()
	eru.mutation.SetTotalProductsInFile(i)
	return eru
}

// SetNillableTotalProductsInFile sets the "total_products_in_file" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableTotalProductsInFile(i *int) *ExtractedRecordUpdate {
	if i != nil {
		eru.SetTotalProductsInFile(*i)
	}
	return eru
}

// AddTotalProductsInFile adds i to the "total_products_in_file" field.
func (eru *ExtractedRecordUpdate) AddTotalProductsInFile(i int) *ExtractedRecordUpdate {
	eru.mutation.AddTotalProductsInFile(i)
	return eru
}

// SetProductIndex sets the "product_index" field.
func (eru *ExtractedRecordUpdate) SetProductIndex(i int) *ExtractedRecordUpdate {
	eru.mutation.ResetProductIndex()
	eru.mutation.SetProductIndex(i)
	return eru
}

// SetNillableProductIndex sets the "product_index" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableProductIndex(i *int) *ExtractedRecordUpdate {
	if i != nil {
		eru.SetProductIndex(*i)
	}
	return eru
}

// AddProductIndex adds i to the "product_index" field.
func (eru *ExtractedRecordUpdate) AddProductIndex(i int) *ExtractedRecordUpdate {
	eru.mutation.AddProductIndex(i)
	return eru
}

// SetErrorMessage sets the "error_message" field.
func (eru *ExtractedRecordUpdate) SetErrorMessage(s string) *ExtractedRecordUpdate {
	eru.mutation.SetErrorMessage(s)
	return eru
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableErrorMessage(s *string) *ExtractedRecordUpdate {
	if s != nil {
		eru.SetErrorMessage(*s)
	}
	return eru
}

// ClearErrorMessage clears the value of the "error_message" field.
func (eru *ExtractedRecordUpdate) ClearErrorMessage() *ExtractedRecordUpdate {
	eru.mutation.ClearErrorMessage()
	return eru
}

// SetCreatedAt sets the "created_at" field.
func (eru *ExtractedRecordUpdate) SetCreatedAt(t time.Time) *ExtractedRecordUpdate {
	eru.mutation.SetCreatedAt(t)
	return eru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableCreatedAt(t *time.Time) *ExtractedRecordUpdate {
	if t != nil {
		eru.SetCreatedAt(*t)
	}
	return eru
}

// SetUpdatedAt sets the "updated_at" field.
func (eru *ExtractedRecordUpdate) SetUpdatedAt(t time.Time) *ExtractedRecordUpdate {
	eru.mutation.SetUpdatedAt(t)
	return eru
}

// SetJobID sets the "job" edge to the ConversionJob entity by ID.
func (eru *ExtractedRecordUpdate) SetJobID(id uuid.UUID) *ExtractedRecordUpdate {
	eru.mutation.SetJobID(id)
	return eru
}

// SetNillableJobID sets the "job" edge to the ConversionJob entity by ID if the given value is not nil.
func (eru *ExtractedRecordUpdate) SetNillableJobID(id *uuid.UUID) *ExtractedRecordUpdate {
	if id != nil {
		eru = eru.SetJobID(*id)
	}
	return eru
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (eru *ExtractedRecordUpdate) SetJob(c *ConversionJob) *ExtractedRecordUpdate {
	return eru.SetJobID(c.ID)
}

// SetFileID sets the "file" edge to the UploadFile entity by ID.
func (eru *ExtractedRecordUpdate) SetFileID(id uuid.UUID) *ExtractedRecordUpdate {
	eru.mutation.SetFileID(id)
	return eru
}

// SetFile sets the "file" edge to the UploadFile entity.
func (eru *ExtractedRecordUpdate) SetFile(u *UploadFile) *ExtractedRecordUpdate {
	return eru.SetFileID(u.ID)
}

// Mutation returns the ExtractedRecordMutation object of the builder.
func (eru *ExtractedRecordUpdate) Mutation() *ExtractedRecordMutation {
	return eru.mutation
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (eru *ExtractedRecordUpdate) ClearJob() *ExtractedRecordUpdate {
	eru.mutation.ClearJob()
	return eru
}

// ClearFile clears the "file" edge to the UploadFile entity.
func (eru *ExtractedRecordUpdate) ClearFile() *ExtractedRecordUpdate {
	eru.mutation.ClearFile()
	return eru
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eru *ExtractedRecordUpdate) Save(ctx context.Context) (int, error) {
	eru.defaults()
	return withHooks(ctx, eru.sqlSave, eru.mutation, eru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eru *ExtractedRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := eru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eru *ExtractedRecordUpdate) Exec(ctx context.Context) error {
	_, err := eru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eru *ExtractedRecordUpdate) ExecX(ctx context.Context) {
	if err := eru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (eru *ExtractedRecordUpdate) defaults() {
	if _, ok := eru.mutation.UpdatedAt(); !ok {
		v := extractedrecord.UpdateDefaultUpdatedAt()
		eru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eru *ExtractedRecordUpdate) check() error {
	if v, ok := eru.mutation.Status(); ok {
		if err := extractedrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.status": %w`, err)}
		}
	}
	if v, ok := eru.mutation.TotalProductsInFile(); ok {
		if err := extractedrecord.TotalProductsInFileValidator(v); err != nil {
			return &ValidationError{Name: "total_products_in_file", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.total_products_in_file": %w`, err)}
		}
	}
	if v, ok := eru.mutation.ProductIndex(); ok {
		if err := extractedrecord.ProductIndexValidator(v); err != nil {
			return &ValidationError{Name: "product_index", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.product_index": %w`, err)}
		}
	}
	if eru.mutation.FileCleared() && len(eru.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedRecord.file"`)
	}
	return nil
}

func (eru *ExtractedRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := eru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedrecord.Table, extractedrecord.Columns, sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID))
	if ps := eru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eru.mutation.OwnerID(); ok {
		_spec.SetField(extractedrecord.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := eru.mutation.ProductName(); ok {
		_spec.SetField(extractedrecord.FieldProductName, field.TypeString, value)
	}
	if eru.mutation.ProductNameCleared() {
		_spec.ClearField(extractedrecord.FieldProductName, field.TypeString)
	}
	if value, ok := eru.mutation.Sku(); ok {
		_spec.SetField(extractedrecord.FieldSku, field.TypeString, value)
	}
	if eru.mutation.SkuCleared() {
		_spec.ClearField(extractedrecord.FieldSku, field.TypeString)
	}
	if value, ok := eru.mutation.ProductCode(); ok {
		_spec.SetField(extractedrecord.FieldProductCode, field.TypeString, value)
	}
	if eru.mutation.ProductCodeCleared() {
		_spec.ClearField(extractedrecord.FieldProductCode, field.TypeString)
	}
	if value, ok := eru.mutation.JanCode(); ok {
		_spec.SetField(extractedrecord.FieldJanCode, field.TypeString, value)
	}
	if eru.mutation.JanCodeCleared() {
		_spec.ClearField(extractedrecord.FieldJanCode, field.TypeString)
	}
	if value, ok := eru.mutation.CharacterName(); ok {
		_spec.SetField(extractedrecord.FieldCharacterName, field.TypeString, value)
	}
	if eru.mutation.CharacterNameCleared() {
		_spec.ClearField(extractedrecord.FieldCharacterName, field.TypeString)
	}
	if value, ok := eru.mutation.Brand(); ok {
		_spec.SetField(extractedrecord.FieldBrand, field.TypeString, value)
	}
	if eru.mutation.BrandCleared() {
		_spec.ClearField(extractedrecord.FieldBrand, field.TypeString)
	}
	if value, ok := eru.mutation.Manufacturer(); ok {
		_spec.SetField(extractedrecord.FieldManufacturer, field.TypeString, value)
	}
	if eru.mutation.ManufacturerCleared() {
		_spec.ClearField(extractedrecord.FieldManufacturer, field.TypeString)
	}
	if value, ok := eru.mutation.SupplierName(); ok {
		_spec.SetField(extractedrecord.FieldSupplierName, field.TypeString, value)
	}
	if eru.mutation.SupplierNameCleared() {
		_spec.ClearField(extractedrecord.FieldSupplierName, field.TypeString)
	}
	if value, ok := eru.mutation.IPName(); ok {
		_spec.SetField(extractedrecord.FieldIPName, field.TypeString, value)
	}
	if eru.mutation.IPNameCleared() {
		_spec.ClearField(extractedrecord.FieldIPName, field.TypeString)
	}
	if value, ok := eru.mutation.Price(); ok {
		_spec.SetField(extractedrecord.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := eru.mutation.AddedPrice(); ok {
		_spec.AddField(extractedrecord.FieldPrice, field.TypeFloat64, value)
	}
	if eru.mutation.PriceCleared() {
		_spec.ClearField(extractedrecord.FieldPrice, field.TypeFloat64)
	}
	if value, ok := eru.mutation.ReferenceSalesPrice(); ok {
		_spec.SetField(extractedrecord.FieldReferenceSalesPrice, field.TypeFloat64, value)
	}
	if value, ok := eru.mutation.AddedReferenceSalesPrice(); ok {
		_spec.AddField(extractedrecord.FieldReferenceSalesPrice, field.TypeFloat64, value)
	}
	if eru.mutation.ReferenceSalesPriceCleared() {
		_spec.ClearField(extractedrecord.FieldReferenceSalesPrice, field.TypeFloat64)
	}
	if value, ok := eru.mutation.WholesalePrice(); ok {
		_spec.SetField(extractedrecord.FieldWholesalePrice, field.TypeFloat64, value)
	}
	if value, ok := eru.mutation.AddedWholesalePrice(); ok {
		_spec.AddField(extractedrecord.FieldWholesalePrice, field.TypeFloat64, value)
	}
	if eru.mutation.WholesalePriceCleared() {
		_spec.ClearField(extractedrecord.FieldWholesalePrice, field.TypeFloat64)
	}
	if value, ok := eru.mutation.OrderAmount(); ok {
		_spec.SetField(extractedrecord.FieldOrderAmount, field.TypeFloat64, value)
	}
	if value, ok := eru.mutation.AddedOrderAmount(); ok {
		_spec.AddField(extractedrecord.FieldOrderAmount, field.TypeFloat64, value)
	}
	if eru.mutation.OrderAmountCleared() {
		_spec.ClearField(extractedrecord.FieldOrderAmount, field.TypeFloat64)
	}
	if value, ok := eru.mutation.Stock(); ok {
		_spec.SetField(extractedrecord.FieldStock, field.TypeInt, value)
	}
	if value, ok := eru.mutation.AddedStock(); ok {
		_spec.AddField(extractedrecord.FieldStock, field.TypeInt, value)
	}
	if eru.mutation.StockCleared() {
		_spec.ClearField(extractedrecord.FieldStock, field.TypeInt)
	}
	if value, ok := eru.mutation.WholesaleQuantity(); ok {
		_spec.SetField(extractedrecord.FieldWholesaleQuantity, field.TypeInt, value)
	}
	if value, ok := eru.mutation.AddedWholesaleQuantity(); ok {
		_spec.AddField(extractedrecord.FieldWholesaleQuantity, field.TypeInt, value)
	}
	if eru.mutation.WholesaleQuantityCleared() {
		_spec.ClearField(extractedrecord.FieldWholesaleQuantity, field.TypeInt)
	}
	if value, ok := eru.mutation.ReleaseDate(); ok {
		_spec.SetField(extractedrecord.FieldReleaseDate, field.TypeString, value)
	}
	if eru.mutation.ReleaseDateCleared() {
		_spec.ClearField(extractedrecord.FieldReleaseDate, field.TypeString)
	}
	if value, ok := eru.mutation.ReservationReleaseDate(); ok {
		_spec.SetField(extractedrecord.FieldReservationReleaseDate, field.TypeString, value)
	}
	if eru.mutation.ReservationReleaseDateCleared() {
		_spec.ClearField(extractedrecord.FieldReservationReleaseDate, field.TypeString)
	}
	if value, ok := eru.mutation.ReservationDeadline(); ok {
		_spec.SetField(extractedrecord.FieldReservationDeadline, field.TypeString, value)
	}
	if eru.mutation.ReservationDeadlineCleared() {
		_spec.ClearField(extractedrecord.FieldReservationDeadline, field.TypeString)
	}
	if value, ok := eru.mutation.ReservationShippingDate(); ok {
		_spec.SetField(extractedrecord.FieldReservationShippingDate, field.TypeString, value)
	}
	if eru.mutation.ReservationShippingDateCleared() {
		_spec.ClearField(extractedrecord.FieldReservationShippingDate, field.TypeString)
	}
	if value, ok := eru.mutation.Dimensions(); ok {
		_spec.SetField(extractedrecord.FieldDimensions, field.TypeString, value)
	}
	if eru.mutation.DimensionsCleared() {
		_spec.ClearField(extractedrecord.FieldDimensions, field.TypeString)
	}
	if value, ok := eru.mutation.SingleProductSize(); ok {
		_spec.SetField(extractedrecord.FieldSingleProductSize, field.TypeString, value)
	}
	if eru.mutation.SingleProductSizeCleared() {
		_spec.ClearField(extractedrecord.FieldSingleProductSize, field.TypeString)
	}
	if value, ok := eru.mutation.PackageSize(); ok {
		_spec.SetField(extractedrecord.FieldPackageSize, field.TypeString, value)
	}
	if eru.mutation.PackageSizeCleared() {
		_spec.ClearField(extractedrecord.FieldPackageSize, field.TypeString)
	}
	if value, ok := eru.mutation.InnerBoxSize(); ok {
		_spec.SetField(extractedrecord.FieldInnerBoxSize, field.TypeString, value)
	}
	if eru.mutation.InnerBoxSizeCleared() {
		_spec.ClearField(extractedrecord.FieldInnerBoxSize, field.TypeString)
	}
	if value, ok := eru.mutation.CartonSize(); ok {
		_spec.SetField(extractedrecord.FieldCartonSize, field.TypeString, value)
	}
	if eru.mutation.CartonSizeCleared() {
		_spec.ClearField(extractedrecord.FieldCartonSize, field.TypeString)
	}
	if value, ok := eru.mutation.Weight(); ok {
		_spec.SetField(extractedrecord.FieldWeight, field.TypeString, value)
	}
	if eru.mutation.WeightCleared() {
		_spec.ClearField(extractedrecord.FieldWeight, field.TypeString)
	}
	if value, ok := eru.mutation.PackageType(); ok {
		_spec.SetField(extractedrecord.FieldPackageType, field.TypeString, value)
	}
	if eru.mutation.PackageTypeCleared() {
		_spec.ClearField(extractedrecord.FieldPackageType, field.TypeString)
	}
	if value, ok := eru.mutation.ProtectiveFilm(); ok {
		_spec.SetField(extractedrecord.FieldProtectiveFilm, field.TypeString, value)
	}
	if eru.mutation.ProtectiveFilmCleared() {
		_spec.ClearField(extractedrecord.FieldProtectiveFilm, field.TypeString)
	}
	if value, ok := eru.mutation.QuantityPerPack(); ok {
		_spec.SetField(extractedrecord.FieldQuantityPerPack, field.TypeString, value)
	}
	if eru.mutation.QuantityPerPackCleared() {
		_spec.ClearField(extractedrecord.FieldQuantityPerPack, field.TypeString)
	}
	if value, ok := eru.mutation.CasePackQuantity(); ok {
		_spec.SetField(extractedrecord.FieldCasePackQuantity, field.TypeInt, value)
	}
	if value, ok := eru.mutation.AddedCasePackQuantity(); ok {
		_spec.AddField(extractedrecord.FieldCasePackQuantity, field.TypeInt, value)
	}
	if eru.mutation.CasePackQuantityCleared() {
		_spec.ClearField(extractedrecord.FieldCasePackQuantity, field.TypeInt)
	}
	if value, ok := eru.mutation.InnerBoxGtin(); ok {
		_spec.SetField(extractedrecord.FieldInnerBoxGtin, field.TypeString, value)
	}
	if eru.mutation.InnerBoxGtinCleared() {
		_spec.ClearField(extractedrecord.FieldInnerBoxGtin, field.TypeString)
	}
	if value, ok := eru.mutation.OuterBoxGtin(); ok {
		_spec.SetField(extractedrecord.FieldOuterBoxGtin, field.TypeString, value)
	}
	if eru.mutation.OuterBoxGtinCleared() {
		_spec.ClearField(extractedrecord.FieldOuterBoxGtin, field.TypeString)
	}
	if value, ok := eru.mutation.Category(); ok {
		_spec.SetField(extractedrecord.FieldCategory, field.TypeString, value)
	}
	if eru.mutation.CategoryCleared() {
		_spec.ClearField(extractedrecord.FieldCategory, field.TypeString)
	}
	if value, ok := eru.mutation.MajorCategory(); ok {
		_spec.SetField(extractedrecord.FieldMajorCategory, field.TypeString, value)
	}
	if eru.mutation.MajorCategoryCleared() {
		_spec.ClearField(extractedrecord.FieldMajorCategory, field.TypeString)
	}
	if value, ok := eru.mutation.MinorCategory(); ok {
		_spec.SetField(extractedrecord.FieldMinorCategory, field.TypeString, value)
	}
	if eru.mutation.MinorCategoryCleared() {
		_spec.ClearField(extractedrecord.FieldMinorCategory, field.TypeString)
	}
	if value, ok := eru.mutation.GenreName(); ok {
		_spec.SetField(extractedrecord.FieldGenreName, field.TypeString, value)
	}
	if eru.mutation.GenreNameCleared() {
		_spec.ClearField(extractedrecord.FieldGenreName, field.TypeString)
	}
	if value, ok := eru.mutation.Classification(); ok {
		_spec.SetField(extractedrecord.FieldClassification, field.TypeString, value)
	}
	if eru.mutation.ClassificationCleared() {
		_spec.ClearField(extractedrecord.FieldClassification, field.TypeString)
	}
	if value, ok := eru.mutation.InStore(); ok {
		_spec.SetField(extractedrecord.FieldInStore, field.TypeString, value)
	}
	if eru.mutation.InStoreCleared() {
		_spec.ClearField(extractedrecord.FieldInStore, field.TypeString)
	}
	if value, ok := eru.mutation.LotNumber(); ok {
		_spec.SetField(extractedrecord.FieldLotNumber, field.TypeString, value)
	}
	if eru.mutation.LotNumberCleared() {
		_spec.ClearField(extractedrecord.FieldLotNumber, field.TypeString)
	}
	if value, ok := eru.mutation.Color(); ok {
		_spec.SetField(extractedrecord.FieldColor, field.TypeString, value)
	}
	if eru.mutation.ColorCleared() {
		_spec.ClearField(extractedrecord.FieldColor, field.TypeString)
	}
	if value, ok := eru.mutation.Material(); ok {
		_spec.SetField(extractedrecord.FieldMaterial, field.TypeString, value)
	}
	if eru.mutation.MaterialCleared() {
		_spec.ClearField(extractedrecord.FieldMaterial, field.TypeString)
	}
	if value, ok := eru.mutation.Origin(); ok {
		_spec.SetField(extractedrecord.FieldOrigin, field.TypeString, value)
	}
	if eru.mutation.OriginCleared() {
		_spec.ClearField(extractedrecord.FieldOrigin, field.TypeString)
	}
	if value, ok := eru.mutation.CountryOfOrigin(); ok {
		_spec.SetField(extractedrecord.FieldCountryOfOrigin, field.TypeString, value)
	}
	if eru.mutation.CountryOfOriginCleared() {
		_spec.ClearField(extractedrecord.FieldCountryOfOrigin, field.TypeString)
	}
	if value, ok := eru.mutation.TargetAge(); ok {
		_spec.SetField(extractedrecord.FieldTargetAge, field.TypeString, value)
	}
	if eru.mutation.TargetAgeCleared() {
		_spec.ClearField(extractedrecord.FieldTargetAge, field.TypeString)
	}
	if value, ok := eru.mutation.Warranty(); ok {
		_spec.SetField(extractedrecord.FieldWarranty, field.TypeString, value)
	}
	if eru.mutation.WarrantyCleared() {
		_spec.ClearField(extractedrecord.FieldWarranty, field.TypeString)
	}
	if value, ok := eru.mutation.Description(); ok {
		_spec.SetField(extractedrecord.FieldDescription, field.TypeString, value)
	}
	if eru.mutation.DescriptionCleared() {
		_spec.ClearField(extractedrecord.FieldDescription, field.TypeString)
	}
	if value, ok := eru.mutation.ImageUrls(); ok {
		_spec.SetField(extractedrecord.FieldImageUrls, field.TypeJSON, value)
	}
	if value, ok := eru.mutation.AppendedImageUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedrecord.FieldImageUrls, value)
		})
	}
	if eru.mutation.ImageUrlsCleared() {
		_spec.ClearField(extractedrecord.FieldImageUrls, field.TypeJSON)
	}
	if value, ok := eru.mutation.RawText(); ok {
		_spec.SetField(extractedrecord.FieldRawText, field.TypeString, value)
	}
	if eru.mutation.RawTextCleared() {
		_spec.ClearField(extractedrecord.FieldRawText, field.TypeString)
	}
	if value, ok := eru.mutation.SectionText(); ok {
		_spec.SetField(extractedrecord.FieldSectionText, field.TypeString, value)
	}
	if eru.mutation.SectionTextCleared() {
		_spec.ClearField(extractedrecord.FieldSectionText, field.TypeString)
	}
	if value, ok := eru.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractedrecord.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := eru.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractedrecord.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := eru.mutation.Status(); ok {
		_spec.SetField(extractedrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := eru.mutation.NeedsReview(); ok {
		_spec.SetField(extractedrecord.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := eru.mutation.IsValidated(); ok {
		_spec.SetField(extractedrecord.FieldIsValidated, field.TypeBool, value)
	}
	if value, ok := eru.mutation.IsMultiProduct(); ok {
		_spec.SetField(extractedrecord.FieldIsMultiProduct, field.TypeBool, value)
	}
	if value, ok := eru.mutation.TotalProductsInFile(); ok {
		_spec.SetField(extractedrecord.FieldTotalProductsInFile, field.TypeInt, value)
	}
	if value, ok := eru.mutation.AddedTotalProductsInFile(); ok {
		_spec.AddField(extractedrecord.FieldTotalProductsInFile, field.TypeInt, value)
	}
	if value, ok := eru.mutation.ProductIndex(); ok {
		_spec.SetField(extractedrecord.FieldProductIndex, field.TypeInt, value)
	}
	if value, ok := eru.mutation.AddedProductIndex(); ok {
		_spec.AddField(extractedrecord.FieldProductIndex, field.TypeInt, value)
	}
	if value, ok := eru.mutation.ErrorMessage(); ok {
		_spec.SetField(extractedrecord.FieldErrorMessage, field.TypeString, value)
	}
	if eru.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractedrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := eru.mutation.CreatedAt(); ok {
		_spec.SetField(extractedrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := eru.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if eru.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eru.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if eru.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eru.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eru.mutation.done = true
	return n, nil
}

// ExtractedRecordUpdateOne is the builder for updating a single ExtractedRecord entity.
type ExtractedRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedRecordMutation
}

// SetOwnerID sets the "owner_id" field.
func (eruo *ExtractedRecordUpdateOne) SetOwnerID(u uuid.UUID) *ExtractedRecordUpdateOne {
	eruo.mutation.SetOwnerID(u)
	return eruo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableOwnerID(u *uuid.UUID) *ExtractedRecordUpdateOne {
	if u != nil {
		eruo.SetOwnerID(*u)
	}
	return eruo
}

// SetConversionJobID sets the "conversion_job_id" field.
func (eruo *ExtractedRecordUpdateOne) SetConversionJobID(u uuid.UUID) *ExtractedRecordUpdateOne {
	eruo.mutation.SetConversionJobID(u)
	return eruo
}

// SetNillableConversionJobID sets the "conversion_job_id" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableConversionJobID(u *uuid.UUID) *ExtractedRecordUpdateOne {
	if u != nil {
		eruo.SetConversionJobID(*u)
	}
	return eruo
}

// ClearConversionJobID clears the value of the "conversion_job_id" field.
func (eruo *ExtractedRecordUpdateOne) ClearConversionJobID() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearConversionJobID()
	return eruo
}

// SetSourceFileID sets the "source_file_id" field.
func (eruo *ExtractedRecordUpdateOne) SetSourceFileID(u uuid.UUID) *ExtractedRecordUpdateOne {
	eruo.mutation.SetSourceFileID(u)
	return eruo
}

// SetNillableSourceFileID sets the "source_file_id" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableSourceFileID(u *uuid.UUID) *ExtractedRecordUpdateOne {
	if u != nil {
		eruo.SetSourceFileID(*u)
	}
	return eruo
}

// SetProductName sets the "product_name" field.
func (eruo *ExtractedRecordUpdateOne) SetProductName(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetProductName(s)
	return eruo
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableProductName(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetProductName(*s)
	}
	return eruo
}

// ClearProductName clears the value of the "product_name" field.
func (eruo *ExtractedRecordUpdateOne) ClearProductName() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearProductName()
	return eruo
}

// SetSku sets the "sku" field.
func (eruo *ExtractedRecordUpdateOne) SetSku(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetSku(s)
	return eruo
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableSku(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetSku(*s)
	}
	return eruo
}

// ClearSku clears the value of the "sku" field.
func (eruo *ExtractedRecordUpdateOne) ClearSku() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearSku()
	return eruo
}

// SetProductCode sets the "product_code" field.
func (eruo *ExtractedRecordUpdateOne) SetProductCode(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetProductCode(s)
	return eruo
}

// SetNillableProductCode sets the "product_code" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableProductCode(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetProductCode(*s)
	}
	return eruo
}

// ClearProductCode clears the value of the "product_code" field.
func (eruo *ExtractedRecordUpdateOne) ClearProductCode() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearProductCode()
	return eruo
}

// SetJanCode sets the "jan_code" field.
func (eruo *ExtractedRecordUpdateOne) SetJanCode(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetJanCode(s)
	return eruo
}

// SetNillableJanCode sets the "jan_code" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableJanCode(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetJanCode(*s)
	}
	return eruo
}

// ClearJanCode clears the value of the "jan_code" field.
func (eruo *ExtractedRecordUpdateOne) ClearJanCode() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearJanCode()
	return eruo
}

// SetCharacterName sets the "character_name" field.
func (eruo *ExtractedRecordUpdateOne) SetCharacterName(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetCharacterName(s)
	return eruo
}

// SetNillableCharacterName sets the "character_name" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableCharacterName(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetCharacterName(*s)
	}
	return eruo
}

// ClearCharacterName clears the value of the "character_name" field.
func (eruo *ExtractedRecordUpdateOne) ClearCharacterName() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearCharacterName()
	return eruo
}

// SetBrand sets the "brand" field.
func (eruo *ExtractedRecordUpdateOne) SetBrand(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetBrand(s)
	return eruo
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableBrand(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetBrand(*s)
	}
	return eruo
}

// ClearBrand clears the value of the "brand" field.
func (eruo *ExtractedRecordUpdateOne) ClearBrand() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearBrand()
	return eruo
}

// SetManufacturer sets the "manufacturer" field.
func (eruo *ExtractedRecordUpdateOne) SetManufacturer(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetManufacturer(s)
	return eruo
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableManufacturer(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetManufacturer(*s)
	}
	return eruo
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (eruo *ExtractedRecordUpdateOne) ClearManufacturer() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearManufacturer()
	return eruo
}

// SetSupplierName sets the "supplier_name" field.
func (eruo *ExtractedRecordUpdateOne) SetSupplierName(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetSupplierName(s)
	return eruo
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableSupplierName(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetSupplierName(*s)
	}
	return eruo
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (eruo *ExtractedRecordUpdateOne) ClearSupplierName() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearSupplierName()
	return eruo
}

// SetIPName sets the "ip_name" field.
func (eruo *ExtractedRecordUpdateOne) SetIPName(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetIPName(s)
	return eruo
}

// SetNillableIPName sets the "ip_name" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableIPName(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetIPName(*s)
	}
	return eruo
}

// ClearIPName clears the value of the "ip_name" field.
func (eruo *ExtractedRecordUpdateOne) ClearIPName() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearIPName()
	return eruo
}

// SetPrice sets the "price" field.
func (eruo *ExtractedRecordUpdateOne) SetPrice(f float64) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetPrice()
	eruo.mutation.SetPrice(f)
	return eruo
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillablePrice(f *float64) *ExtractedRecordUpdateOne {
	if f != nil {
		eruo.SetPrice(*f)
	}
	return eruo
}

// AddPrice adds f to the "price" field.
func (eruo *ExtractedRecordUpdateOne) AddPrice(f float64) *ExtractedRecordUpdateOne {
	eruo.mutation.AddPrice(f)
	return eruo
}

// ClearPrice clears the value of the "price" field.
func (eruo *ExtractedRecordUpdateOne) ClearPrice() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearPrice()
	return eruo
}

// SetReferenceSalesPrice sets the "reference_sales_price" field.
func (eruo *ExtractedRecordUpdateOne) SetReferenceSalesPrice(f float64) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetReferenceSalesPrice()
	eruo.mutation.SetReferenceSalesPrice(f)
	return eruo
}

// SetNillableReferenceSalesPrice sets the "reference_sales_price" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableReferenceSalesPrice(f *float64) *ExtractedRecordUpdateOne {
	if f != nil {
		eruo.SetReferenceSalesPrice(*f)
	}
	return eruo
}

// AddReferenceSalesPrice adds f to the "reference_sales_price" field.
func (eruo *ExtractedRecordUpdateOne) AddReferenceSalesPrice(f float64) *ExtractedRecordUpdateOne {
	eruo.mutation.AddReferenceSalesPrice(f)
	return eruo
}

// ClearReferenceSalesPrice clears the value of the "reference_sales_price" field.
func (eruo *ExtractedRecordUpdateOne) ClearReferenceSalesPrice() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearReferenceSalesPrice()
	return eruo
}

// SetWholesalePrice sets the "wholesale_price" field.
func (eruo *ExtractedRecordUpdateOne) SetWholesalePrice(f float64) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetWholesalePrice()
	eruo.mutation.SetWholesalePrice(f)
	return eruo
}

// SetNillableWholesalePrice sets the "wholesale_price" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableWholesalePrice(f *float64) *ExtractedRecordUpdateOne {
	if f != nil {
		eruo.SetWholesalePrice(*f)
	}
	return eruo
}

// AddWholesalePrice adds f to the "wholesale_price" field.
func (eruo *ExtractedRecordUpdateOne) AddWholesalePrice(f float64) *ExtractedRecordUpdateOne {
	eruo.mutation.AddWholesalePrice(f)
	return eruo
}

// ClearWholesalePrice clears the value of the "wholesale_price" field.
func (eruo *ExtractedRecordUpdateOne) ClearWholesalePrice() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearWholesalePrice()
	return eruo
}

// SetOrderAmount sets the "order_amount" field.
func (eruo *ExtractedRecordUpdateOne) SetOrderAmount(f float64) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetOrderAmount()
	eruo.mutation.SetOrderAmount(f)
	return eruo
}

// SetNillableOrderAmount sets the "order_amount" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableOrderAmount(f *float64) *ExtractedRecordUpdateOne {
	if f != nil {
		eruo.SetOrderAmount(*f)
	}
	return eruo
}

// AddOrderAmount adds f to the "order_amount" field.
func (eruo *ExtractedRecordUpdateOne) AddOrderAmount(f float64) *ExtractedRecordUpdateOne {
	eruo.mutation.AddOrderAmount(f)
	return eruo
}

// ClearOrderAmount clears the value of the "order_amount" field.
func (eruo *ExtractedRecordUpdateOne) ClearOrderAmount() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearOrderAmount()
	return eruo
}

// SetStock sets the "stock" field.
func (eruo *ExtractedRecordUpdateOne) SetStock(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetStock()
	eruo.mutation.SetStock(i)
	return eruo
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableStock(i *int) *ExtractedRecordUpdateOne {
	if i != nil {
		eruo.SetStock(*i)
	}
	return eruo
}

// AddStock adds i to the "stock" field.
func (eruo *ExtractedRecordUpdateOne) AddStock(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.AddStock(i)
	return eruo
}

// ClearStock clears the value of the "stock" field.
func (eruo *ExtractedRecordUpdateOne) ClearStock() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearStock()
	return eruo
}

// SetWholesaleQuantity sets the "wholesale_quantity" field.
func (eruo *ExtractedRecordUpdateOne) SetWholesaleQuantity(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetWholesaleQuantity()
	eruo.mutation.SetWholesaleQuantity(i)
	return eruo
}

// SetNillableWholesaleQuantity sets the "wholesale_quantity" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableWholesaleQuantity(i *int) *ExtractedRecordUpdateOne {
	if i != nil {
		eruo.SetWholesaleQuantity(*i)
	}
	return eruo
}

// AddWholesaleQuantity adds i to the "wholesale_quantity" field.
func (eruo *ExtractedRecordUpdateOne) AddWholesaleQuantity(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.AddWholesaleQuantity(i)
	return eruo
}

// ClearWholesaleQuantity clears the value of the "wholesale_quantity" field.
func (eruo *ExtractedRecordUpdateOne) ClearWholesaleQuantity() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearWholesaleQuantity()
	return eruo
}

// SetReleaseDate sets the "release_date" field.
func (eruo *ExtractedRecordUpdateOne) SetReleaseDate(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetReleaseDate(s)
	return eruo
}

// SetNillableReleaseDate sets the "release_date" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableReleaseDate(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetReleaseDate(*s)
	}
	return eruo
}

// ClearReleaseDate clears the value of the "release_date" field.
func (eruo *ExtractedRecordUpdateOne) ClearReleaseDate() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearReleaseDate()
	return eruo
}

// SetReservationReleaseDate sets the "reservation_release_date" field.
func (eruo *ExtractedRecordUpdateOne) SetReservationReleaseDate(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetReservationReleaseDate(s)
	return eruo
}

// SetNillableReservationReleaseDate sets the "reservation_release_date" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableReservationReleaseDate(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetReservationReleaseDate(*s)
	}
	return eruo
}

// ClearReservationReleaseDate clears the value of the "reservation_release_date" field.
func (eruo *ExtractedRecordUpdateOne) ClearReservationReleaseDate() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearReservationReleaseDate()
	return eruo
}

// SetReservationDeadline sets the "reservation_deadline" field.
func (eruo *ExtractedRecordUpdateOne) SetReservationDeadline(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetReservationDeadline(s)
	return eruo
}

// SetNillableReservationDeadline sets the "reservation_deadline" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableReservationDeadline(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetReservationDeadline(*s)
	}
	return eruo
}

// ClearReservationDeadline clears the value of the "reservation_deadline" field.
func (eruo *ExtractedRecordUpdateOne) ClearReservationDeadline() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearReservationDeadline()
	return eruo
}

// SetReservationShippingDate sets the "reservation_shipping_date" field.
func (eruo *ExtractedRecordUpdateOne) SetReservationShippingDate(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetReservationShippingDate(s)
	return eruo
}

// SetNillableReservationShippingDate sets the "reservation_shipping_date" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableReservationShippingDate(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetReservationShippingDate(*s)
	}
	return eruo
}

// ClearReservationShippingDate clears the value of the "reservation_shipping_date" field.
func (eruo *ExtractedRecordUpdateOne) ClearReservationShippingDate() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearReservationShippingDate()
	return eruo
}

// SetDimensions sets the "dimensions" field.
func (eruo *ExtractedRecordUpdateOne) SetDimensions(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetDimensions(s)
	return eruo
}

// SetNillableDimensions sets the "dimensions" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableDimensions(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetDimensions(*s)
	}
	return eruo
}

// ClearDimensions clears the value of the "dimensions" field.
func (eruo *ExtractedRecordUpdateOne) ClearDimensions() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearDimensions()
	return eruo
}

// SetSingleProductSize sets the "single_product_size" field.
func (eruo *ExtractedRecordUpdateOne) SetSingleProductSize(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetSingleProductSize(s)
	return eruo
}

// SetNillableSingleProductSize sets the "single_product_size" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableSingleProductSize(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetSingleProductSize(*s)
	}
	return eruo
}

// ClearSingleProductSize clears the value of the "single_product_size" field.
func (eruo *ExtractedRecordUpdateOne) ClearSingleProductSize() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearSingleProductSize()
	return eruo
}

// SetPackageSize sets the "package_size" field.
func (eruo *ExtractedRecordUpdateOne) SetPackageSize(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetPackageSize(s)
	return eruo
}

// SetNillablePackageSize sets the "package_size" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillablePackageSize(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetPackageSize(*s)
	}
	return eruo
}

// ClearPackageSize clears the value of the "package_size" field.
func (eruo *ExtractedRecordUpdateOne) ClearPackageSize() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearPackageSize()
	return eruo
}

// SetInnerBoxSize sets the "inner_box_size" field.
func (eruo *ExtractedRecordUpdateOne) SetInnerBoxSize(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetInnerBoxSize(s)
	return eruo
}

// SetNillableInnerBoxSize sets the "inner_box_size" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableInnerBoxSize(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetInnerBoxSize(*s)
	}
	return eruo
}

// ClearInnerBoxSize clears the value of the "inner_box_size" field.
func (eruo *ExtractedRecordUpdateOne) ClearInnerBoxSize() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearInnerBoxSize()
	return eruo
}

// SetCartonSize sets the "carton_size" field.
func (eruo *ExtractedRecordUpdateOne) SetCartonSize(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetCartonSize(s)
	return eruo
}

// SetNillableCartonSize sets the "carton_size" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableCartonSize(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetCartonSize(*s)
	}
	return eruo
}

// ClearCartonSize clears the value of the "carton_size" field.
func (eruo *ExtractedRecordUpdateOne) ClearCartonSize() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearCartonSize()
	return eruo
}

// SetWeight sets the "weight" field.
func (eruo *ExtractedRecordUpdateOne) SetWeight(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetWeight(s)
	return eruo
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableWeight(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetWeight(*s)
	}
	return eruo
}

// ClearWeight clears the value of the "weight" field.
func (eruo *ExtractedRecordUpdateOne) ClearWeight() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearWeight()
	return eruo
}

// SetPackageType sets the "package_type" field.
func (eruo *ExtractedRecordUpdateOne) SetPackageType(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetPackageType(s)
	return eruo
}

// SetNillablePackageType sets the "package_type" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillablePackageType(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetPackageType(*s)
	}
	return eruo
}

// ClearPackageType clears the value of the "package_type" field.
func (eruo *ExtractedRecordUpdateOne) ClearPackageType() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearPackageType()
	return eruo
}

// SetProtectiveFilm sets the "protective_film" field.
func (eruo *ExtractedRecordUpdateOne) SetProtectiveFilm(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetProtectiveFilm(s)
	return eruo
}

// SetNillableProtectiveFilm sets the "protective_film" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableProtectiveFilm(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetProtectiveFilm(*s)
	}
	return eruo
}

// ClearProtectiveFilm clears the value of the "protective_film" field.
func (eruo *ExtractedRecordUpdateOne) ClearProtectiveFilm() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearProtectiveFilm()
	return eruo
}

// SetQuantityPerPack sets the "quantity_per_pack" field.
func (eruo *ExtractedRecordUpdateOne) SetQuantityPerPack(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetQuantityPerPack(s)
	return eruo
}

// SetNillableQuantityPerPack sets the "quantity_per_pack" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableQuantityPerPack(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetQuantityPerPack(*s)
	}
	return eruo
}

// ClearQuantityPerPack clears the value of the "quantity_per_pack" field.
func (eruo *ExtractedRecordUpdateOne) ClearQuantityPerPack() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearQuantityPerPack()
	return eruo
}

// SetCasePackQuantity sets the "case_pack_quantity" field.
func (eruo *ExtractedRecordUpdateOne) SetCasePackQuantity(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetCasePackQuantity()
	eruo.mutation.SetCasePackQuantity(i)
	return eruo
}

// SetNillableCasePackQuantity sets the "case_pack_quantity" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableCasePackQuantity(i *int) *ExtractedRecordUpdateOne {
	if i != nil {
		eruo.SetCasePackQuantity(*i)
	}
	return eruo
}

// AddCasePackQuantity adds i to the "case_pack_quantity" field.
func (eruo *ExtractedRecordUpdateOne) AddCasePackQuantity(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.AddCasePackQuantity(i)
	return eruo
}

// ClearCasePackQuantity clears the value of the "case_pack_quantity" field.
func (eruo *ExtractedRecordUpdateOne) ClearCasePackQuantity() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearCasePackQuantity()
	return eruo
}

// SetInnerBoxGtin sets the "inner_box_gtin" field.
func (eruo *ExtractedRecordUpdateOne) SetInnerBoxGtin(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetInnerBoxGtin(s)
	return eruo
}

// SetNillableInnerBoxGtin sets the "inner_box_gtin" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableInnerBoxGtin(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetInnerBoxGtin(*s)
	}
	return eruo
}

// ClearInnerBoxGtin clears the value of the "inner_box_gtin" field.
func (eruo *ExtractedRecordUpdateOne) ClearInnerBoxGtin() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearInnerBoxGtin()
	return eruo
}

// SetOuterBoxGtin sets the "outer_box_gtin" field.
func (eruo *ExtractedRecordUpdateOne) SetOuterBoxGtin(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetOuterBoxGtin(s)
	return eruo
}

// SetNillableOuterBoxGtin sets the "outer_box_gtin" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableOuterBoxGtin(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetOuterBoxGtin(*s)
	}
	return eruo
}

// ClearOuterBoxGtin clears the value of the "outer_box_gtin" field.
func (eruo *ExtractedRecordUpdateOne) ClearOuterBoxGtin() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearOuterBoxGtin()
	return eruo
}

// SetCategory sets the "category" field.
func (eruo *ExtractedRecordUpdateOne) SetCategory(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetCategory(s)
	return eruo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableCategory(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetCategory(*s)
	}
	return eruo
}

// ClearCategory clears the value of the "category" field.
func (eruo *ExtractedRecordUpdateOne) ClearCategory() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearCategory()
	return eruo
}

// SetMajorCategory sets the "major_category" field.
func (eruo *ExtractedRecordUpdateOne) SetMajorCategory(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetMajorCategory(s)
	return eruo
}

// SetNillableMajorCategory sets the "major_category" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableMajorCategory(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetMajorCategory(*s)
	}
	return eruo
}

// ClearMajorCategory clears the value of the "major_category" field.
func (eruo *ExtractedRecordUpdateOne) ClearMajorCategory() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearMajorCategory()
	return eruo
}

// SetMinorCategory sets the "minor_category" field.
func (eruo *ExtractedRecordUpdateOne) SetMinorCategory(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetMinorCategory(s)
	return eruo
}

// SetNillableMinorCategory sets the "minor_category" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableMinorCategory(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetMinorCategory(*s)
	}
	return eruo
}

// ClearMinorCategory clears the value of the "minor_category" field.
func (eruo *ExtractedRecordUpdateOne) ClearMinorCategory() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearMinorCategory()
	return eruo
}

// SetGenreName sets the "genre_name" field.
func (eruo *ExtractedRecordUpdateOne) SetGenreName(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetGenreName(s)
	return eruo
}

// SetNillableGenreName sets the "genre_name" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableGenreName(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetGenreName(*s)
	}
	return eruo
}

// ClearGenreName clears the value of the "genre_name" field.
func (eruo *ExtractedRecordUpdateOne) ClearGenreName() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearGenreName()
	return eruo
}

// SetClassification sets the "classification" field.
func (eruo *ExtractedRecordUpdateOne) SetClassification(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetClassification(s)
	return eruo
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableClassification(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetClassification(*s)
	}
	return eruo
}

// ClearClassification clears the value of the "classification" field.
func (eruo *ExtractedRecordUpdateOne) ClearClassification() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearClassification()
	return eruo
}

// SetInStore sets the "in_store" field.
func (eruo *ExtractedRecordUpdateOne) SetInStore(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetInStore(s)
	return eruo
}

// SetNillableInStore sets the "in_store" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableInStore(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetInStore(*s)
	}
	return eruo
}

// ClearInStore clears the value of the "in_store" field.
func (eruo *ExtractedRecordUpdateOne) ClearInStore() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearInStore()
	return eruo
}

// SetLotNumber sets the "lot_number" field.
func (eruo *ExtractedRecordUpdateOne) SetLotNumber(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetLotNumber(s)
	return eruo
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableLotNumber(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetLotNumber(*s)
	}
	return eruo
}

// ClearLotNumber clears the value of the "lot_number" field.
func (eruo *ExtractedRecordUpdateOne) ClearLotNumber() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearLotNumber()
	return eruo
}

// SetColor sets the "color" field.
func (eruo *ExtractedRecordUpdateOne) SetColor(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetColor(s)
	return eruo
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableColor(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetColor(*s)
	}
	return eruo
}

// ClearColor clears the value of the "color" field.
func (eruo *ExtractedRecordUpdateOne) ClearColor() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearColor()
	return eruo
}

// SetMaterial sets the "material" field.
func (eruo *ExtractedRecordUpdateOne) SetMaterial(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetMaterial(s)
	return eruo
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableMaterial(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetMaterial(*s)
	}
	return eruo
}

// ClearMaterial clears the value of the "material" field.
func (eruo *ExtractedRecordUpdateOne) ClearMaterial() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearMaterial()
	return eruo
}

// SetOrigin sets the "origin" field.
func (eruo *ExtractedRecordUpdateOne) SetOrigin(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetOrigin(s)
	return eruo
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableOrigin(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetOrigin(*s)
	}
	return eruo
}

// ClearOrigin clears the value of the "origin" field.
func (eruo *ExtractedRecordUpdateOne) ClearOrigin() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearOrigin()
	return eruo
}

// SetCountryOfOrigin sets the "country_of_origin" field.
func (eruo *ExtractedRecordUpdateOne) SetCountryOfOrigin(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetCountryOfOrigin(s)
	return eruo
}

// SetNillableCountryOfOrigin sets the "country_of_origin" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableCountryOfOrigin(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetCountryOfOrigin(*s)
	}
	return eruo
}

// ClearCountryOfOrigin clears the value of the "country_of_origin" field.
func (eruo *ExtractedRecordUpdateOne) ClearCountryOfOrigin() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearCountryOfOrigin()
	return eruo
}

// SetTargetAge sets the "target_age" field.
func (eruo *ExtractedRecordUpdateOne) SetTargetAge(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetTargetAge(s)
	return eruo
}

// SetNillableTargetAge sets the "target_age" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableTargetAge(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetTargetAge(*s)
	}
	return eruo
}

// ClearTargetAge clears the value of the "target_age" field.
func (eruo *ExtractedRecordUpdateOne) ClearTargetAge() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearTargetAge()
	return eruo
}

// SetWarranty sets the "warranty" field.
func (eruo *ExtractedRecordUpdateOne) SetWarranty(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetWarranty(s)
	return eruo
}

// SetNillableWarranty sets the "warranty" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableWarranty(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetWarranty(*s)
	}
	return eruo
}

// ClearWarranty clears the value of the "warranty" field.
func (eruo *ExtractedRecordUpdateOne) ClearWarranty() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearWarranty()
	return eruo
}

// SetDescription sets the "description" field.
func (eruo *ExtractedRecordUpdateOne) SetDescription(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetDescription(s)
	return eruo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableDescription(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetDescription(*s)
	}
	return eruo
}

// ClearDescription clears the value of the "description" field.
func (eruo *ExtractedRecordUpdateOne) ClearDescription() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearDescription()
	return eruo
}

// SetImageUrls sets the "image_urls" field.
func (eruo *ExtractedRecordUpdateOne) SetImageUrls(s []string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetImageUrls(s)
	return eruo
}

// AppendImageUrls appends s to the "image_urls" field.
func (eruo *ExtractedRecordUpdateOne) AppendImageUrls(s []string) *ExtractedRecordUpdateOne {
	eruo.mutation.AppendImageUrls(s)
	return eruo
}

// ClearImageUrls clears the value of the "image_urls" field.
func (eruo *ExtractedRecordUpdateOne) ClearImageUrls() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearImageUrls()
	return eruo
}

// SetRawText sets the "raw_text" field.
func (eruo *ExtractedRecordUpdateOne) SetRawText(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetRawText(s)
	return eruo
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableRawText(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetRawText(*s)
	}
	return eruo
}

// ClearRawText clears the value of the "raw_text" field.
func (eruo *ExtractedRecordUpdateOne) ClearRawText() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearRawText()
	return eruo
}

// SetSectionText sets the "section_text" field.
func (eruo *ExtractedRecordUpdateOne) SetSectionText(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetSectionText(s)
	return eruo
}

// SetNillableSectionText sets the "section_text" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableSectionText(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetSectionText(*s)
	}
	return eruo
}

// ClearSectionText clears the value of the "section_text" field.
func (eruo *ExtractedRecordUpdateOne) ClearSectionText() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearSectionText()
	return eruo
}

// SetConfidenceScore sets the "confidence_score" field.
func (eruo *ExtractedRecordUpdateOne) SetConfidenceScore(f float32) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetConfidenceScore()
	eruo.mutation.SetConfidenceScore(f)
	return eruo
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableConfidenceScore(f *float32) *ExtractedRecordUpdateOne {
	if f != nil {
		eruo.SetConfidenceScore(*f)
	}
	return eruo
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (eruo *ExtractedRecordUpdateOne) AddConfidenceScore(f float32) *ExtractedRecordUpdateOne {
	eruo.mutation.AddConfidenceScore(f)
	return eruo
}

// SetStatus sets the "status" field.
func (eruo *ExtractedRecordUpdateOne) SetStatus(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetStatus(s)
	return eruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableStatus(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetStatus(*s)
	}
	return eruo
}

// SetNeedsReview sets the "needs_review" field.
func (eruo *ExtractedRecordUpdateOne) SetNeedsReview(b bool) *ExtractedRecordUpdateOne {
	eruo.mutation.SetNeedsReview(b)
	return eruo
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableNeedsReview(b *bool) *ExtractedRecordUpdateOne {
	if b != nil {
		eruo.SetNeedsReview(*b)
	}
	return eruo
}

// SetIsValidated sets the "is_validated" field.
func (eruo *ExtractedRecordUpdateOne) SetIsValidated(b bool) *ExtractedRecordUpdateOne {
	eruo.mutation.SetIsValidated(b)
	return eruo
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableIsValidated(b *bool) *ExtractedRecordUpdateOne {
	if b != nil {
		eruo.SetIsValidated(*b)
	}
	return eruo
}

// SetIsMultiProduct sets the "is_multi_product" field.
func (eruo *ExtractedRecordUpdateOne) SetIsMultiProduct(b bool) *ExtractedRecordUpdateOne {
	eruo.mutation.SetIsMultiProduct(b)
	return eruo
}

// SetNillableIsMultiProduct sets the "is_multi_product" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableIsMultiProduct(b *bool) *ExtractedRecordUpdateOne {
	if b != nil {
		eruo.SetIsMultiProduct(*b)
	}
	return eruo
}

// SetTotalProductsInFile sets the "total_products_in_file" field.
func (eruo *ExtractedRecordUpdateOne) SetTotalProductsInFile(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetTotalProductsInFile()
	eruo.mutation.SetTotalProductsInFile(i)
	return eruo
}

// SetNillableTotalProductsInFile sets the "total_products_in_file" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableTotalProductsInFile(i *int) *ExtractedRecordUpdateOne {
	if i != nil {
		eruo.SetTotalProductsInFile(*i)
	}
	return eruo
}

// AddTotalProductsInFile adds i to the "total_products_in_file" field.
func (eruo *ExtractedRecordUpdateOne) AddTotalProductsInFile(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.AddTotalProductsInFile(i)
	return eruo
}

// SetProductIndex sets the "product_index" field.
func (eruo *ExtractedRecordUpdateOne) SetProductIndex(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.ResetProductIndex()
	eruo.mutation.SetProductIndex(i)
	return eruo
}

// SetNillableProductIndex sets the "product_index" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableProductIndex(i *int) *ExtractedRecordUpdateOne {
	if i != nil {
		eruo.SetProductIndex(*i)
	}
	return eruo
}

// AddProductIndex adds i to the "product_index" field.
func (eruo *ExtractedRecordUpdateOne) AddProductIndex(i int) *ExtractedRecordUpdateOne {
	eruo.mutation.AddProductIndex(i)
	return eruo
}

// SetErrorMessage sets the "error_message" field.
func (eruo *ExtractedRecordUpdateOne) SetErrorMessage(s string) *ExtractedRecordUpdateOne {
	eruo.mutation.SetErrorMessage(s)
	return eruo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableErrorMessage(s *string) *ExtractedRecordUpdateOne {
	if s != nil {
		eruo.SetErrorMessage(*s)
	}
	return eruo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (eruo *ExtractedRecordUpdateOne) ClearErrorMessage() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearErrorMessage()
	return eruo
}

// SetCreatedAt sets the "created_at" field.
func (eruo *ExtractedRecordUpdateOne) SetCreatedAt(t time.Time) *ExtractedRecordUpdateOne {
	eruo.mutation.SetCreatedAt(t)
	return eruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableCreatedAt(t *time.Time) *ExtractedRecordUpdateOne {
	if t != nil {
		eruo.SetCreatedAt(*t)
	}
	return eruo
}

// SetUpdatedAt sets the "updated_at" field.
func (eruo *ExtractedRecordUpdateOne) SetUpdatedAt(t time.Time) *ExtractedRecordUpdateOne {
	eruo.mutation.SetUpdatedAt(t)
	return eruo
}

// SetJobID sets the "job" edge to the ConversionJob entity by ID.
func (eruo *ExtractedRecordUpdateOne) SetJobID(id uuid.UUID) *ExtractedRecordUpdateOne {
	eruo.mutation.SetJobID(id)
	return eruo
}

// SetNillableJobID sets the "job" edge to the ConversionJob entity by ID if the given value is not nil.
func (eruo *ExtractedRecordUpdateOne) SetNillableJobID(id *uuid.UUID) *ExtractedRecordUpdateOne {
	if id != nil {
		eruo = eruo.SetJobID(*id)
	}
	return eruo
}

// SetJob sets the "job" edge to the ConversionJob entity.
func (eruo *ExtractedRecordUpdateOne) SetJob(c *ConversionJob) *ExtractedRecordUpdateOne {
	return eruo.SetJobID(c.ID)
}

// SetFileID sets the "file" edge to the UploadFile entity by ID.
func (eruo *ExtractedRecordUpdateOne) SetFileID(id uuid.UUID) *ExtractedRecordUpdateOne {
	eruo.mutation.SetFileID(id)
	return eruo
}

// SetFile sets the "file" edge to the UploadFile entity.
func (eruo *ExtractedRecordUpdateOne) SetFile(u *UploadFile) *ExtractedRecordUpdateOne {
	return eruo.SetFileID(u.ID)
}

// Mutation returns the ExtractedRecordMutation object of the builder.
func (eruo *ExtractedRecordUpdateOne) Mutation() *ExtractedRecordMutation {
	return eruo.mutation
}

// ClearJob clears the "job" edge to the ConversionJob entity.
func (eruo *ExtractedRecordUpdateOne) ClearJob() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearJob()
	return eruo
}

// ClearFile clears the "file" edge to the UploadFile entity.
func (eruo *ExtractedRecordUpdateOne) ClearFile() *ExtractedRecordUpdateOne {
	eruo.mutation.ClearFile()
	return eruo
}

// Where appends a list predicates to the ExtractedRecordUpdate builder.
func (eruo *ExtractedRecordUpdateOne) Where(ps ...predicate.ExtractedRecord) *ExtractedRecordUpdateOne {
	eruo.mutation.Where(ps...)
	return eruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (eruo *ExtractedRecordUpdateOne) Select(field string, fields ...string) *ExtractedRecordUpdateOne {
	eruo.fields = append([]string{field}, fields...)
	return eruo
}

// Save executes the query and returns the updated ExtractedRecord entity.
func (eruo *ExtractedRecordUpdateOne) Save(ctx context.Context) (*ExtractedRecord, error) {
	eruo.defaults()
	return withHooks(ctx, eruo.sqlSave, eruo.mutation, eruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eruo *ExtractedRecordUpdateOne) SaveX(ctx context.Context) *ExtractedRecord {
	node, err := eruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (eruo *ExtractedRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := eruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eruo *ExtractedRecordUpdateOne) ExecX(ctx context.Context) {
	if err := eruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (eruo *ExtractedRecordUpdateOne) defaults() {
	if _, ok := eruo.mutation.UpdatedAt(); !ok {
		v := extractedrecord.UpdateDefaultUpdatedAt()
		eruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eruo *ExtractedRecordUpdateOne) check() error {
	if v, ok := eruo.mutation.Status(); ok {
		if err := extractedrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.status": %w`, err)}
		}
	}
	if v, ok := eruo.mutation.TotalProductsInFile(); ok {
		if err := extractedrecord.TotalProductsInFileValidator(v); err != nil {
			return &ValidationError{Name: "total_products_in_file", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.total_products_in_file": %w`, err)}
		}
	}
	if v, ok := eruo.mutation.ProductIndex(); ok {
		if err := extractedrecord.ProductIndexValidator(v); err != nil {
			return &ValidationError{Name: "product_index", err: fmt.Errorf(`ent: validator failed for field "ExtractedRecord.product_index": %w`, err)}
		}
	}
	if eruo.mutation.FileCleared() && len(eruo.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedRecord.file"`)
	}
	return nil
}

func (eruo *ExtractedRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedRecord, err error) {
	if err := eruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedrecord.Table, extractedrecord.Columns, sqlgraph.NewFieldSpec(extractedrecord.FieldID, field.TypeUUID))
	id, ok := eruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := eruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedrecord.FieldID)
		for _, f := range fields {
			if !extractedrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := eruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eruo.mutation.OwnerID(); ok {
		_spec.SetField(extractedrecord.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := eruo.mutation.ProductName(); ok {
		_spec.SetField(extractedrecord.FieldProductName, field.TypeString, value)
	}
	if eruo.mutation.ProductNameCleared() {
		_spec.ClearField(extractedrecord.FieldProductName, field.TypeString)
	}
	if value, ok := eruo.mutation.Sku(); ok {
		_spec.SetField(extractedrecord.FieldSku, field.TypeString, value)
	}
	if eruo.mutation.SkuCleared() {
		_spec.ClearField(extractedrecord.FieldSku, field.TypeString)
	}
	if value, ok := eruo.mutation.ProductCode(); ok {
		_spec.SetField(extractedrecord.FieldProductCode, field.TypeString, value)
	}
	if eruo.mutation.ProductCodeCleared() {
		_spec.ClearField(extractedrecord.FieldProductCode, field.TypeString)
	}
	if value, ok := eruo.mutation.JanCode(); ok {
		_spec.SetField(extractedrecord.FieldJanCode, field.TypeString, value)
	}
	if eruo.mutation.JanCodeCleared() {
		_spec.ClearField(extractedrecord.FieldJanCode, field.TypeString)
	}
	if value, ok := eruo.mutation.CharacterName(); ok {
		_spec.SetField(extractedrecord.FieldCharacterName, field.TypeString, value)
	}
	if eruo.mutation.CharacterNameCleared() {
		_spec.ClearField(extractedrecord.FieldCharacterName, field.TypeString)
	}
	if value, ok := eruo.mutation.Brand(); ok {
		_spec.SetField(extractedrecord.FieldBrand, field.TypeString, value)
	}
	if eruo.mutation.BrandCleared() {
		_spec.ClearField(extractedrecord.FieldBrand, field.TypeString)
	}
	if value, ok := eruo.mutation.Manufacturer(); ok {
		_spec.SetField(extractedrecord.FieldManufacturer, field.TypeString, value)
	}
	if eruo.mutation.ManufacturerCleared() {
		_spec.ClearField(extractedrecord.FieldManufacturer, field.TypeString)
	}
	if value, ok := eruo.mutation.SupplierName(); ok {
		_spec.SetField(extractedrecord.FieldSupplierName, field.TypeString, value)
	}
	if eruo.mutation.SupplierNameCleared() {
		_spec.ClearField(extractedrecord.FieldSupplierName, field.TypeString)
	}
	if value, ok := eruo.mutation.IPName(); ok {
		_spec.SetField(extractedrecord.FieldIPName, field.TypeString, value)
	}
	if eruo.mutation.IPNameCleared() {
		_spec.ClearField(extractedrecord.FieldIPName, field.TypeString)
	}
	if value, ok := eruo.mutation.Price(); ok {
		_spec.SetField(extractedrecord.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := eruo.mutation.AddedPrice(); ok {
		_spec.AddField(extractedrecord.FieldPrice, field.TypeFloat64, value)
	}
	if eruo.mutation.PriceCleared() {
		_spec.ClearField(extractedrecord.FieldPrice, field.TypeFloat64)
	}
	if value, ok := eruo.mutation.ReferenceSalesPrice(); ok {
		_spec.SetField(extractedrecord.FieldReferenceSalesPrice, field.TypeFloat64, value)
	}
	if value, ok := eruo.mutation.AddedReferenceSalesPrice(); ok {
		_spec.AddField(extractedrecord.FieldReferenceSalesPrice, field.TypeFloat64, value)
	}
	if eruo.mutation.ReferenceSalesPriceCleared() {
		_spec.ClearField(extractedrecord.FieldReferenceSalesPrice, field.TypeFloat64)
	}
	if value, ok := eruo.mutation.WholesalePrice(); ok {
		_spec.SetField(extractedrecord.FieldWholesalePrice, field.TypeFloat64, value)
	}
	if value, ok := eruo.mutation.AddedWholesalePrice(); ok {
		_spec.AddField(extractedrecord.FieldWholesalePrice, field.TypeFloat64, value)
	}
	if eruo.mutation.WholesalePriceCleared() {
		_spec.ClearField(extractedrecord.FieldWholesalePrice, field.TypeFloat64)
	}
	if value, ok := eruo.mutation.OrderAmount(); ok {
		_spec.SetField(extractedrecord.FieldOrderAmount, field.TypeFloat64, value)
	}
	if value, ok := eruo.mutation.AddedOrderAmount(); ok {
		_spec.AddField(extractedrecord.FieldOrderAmount, field.TypeFloat64, value)
	}
	if eruo.mutation.OrderAmountCleared() {
		_spec.ClearField(extractedrecord.FieldOrderAmount, field.TypeFloat64)
	}
	if value, ok := eruo.mutation.Stock(); ok {
		_spec.SetField(extractedrecord.FieldStock, field.TypeInt, value)
	}
	if value, ok := eruo.mutation.AddedStock(); ok {
		_spec.AddField(extractedrecord.FieldStock, field.TypeInt, value)
	}
	if eruo.mutation.StockCleared() {
		_spec.ClearField(extractedrecord.FieldStock, field.TypeInt)
	}
	if value, ok := eruo.mutation.WholesaleQuantity(); ok {
		_spec.SetField(extractedrecord.FieldWholesaleQuantity, field.TypeInt, value)
	}
	if value, ok := eruo.mutation.AddedWholesaleQuantity(); ok {
		_spec.AddField(extractedrecord.FieldWholesaleQuantity, field.TypeInt, value)
	}
	if eruo.mutation.WholesaleQuantityCleared() {
		_spec.ClearField(extractedrecord.FieldWholesaleQuantity, field.TypeInt)
	}
	if value, ok := eruo.mutation.ReleaseDate(); ok {
		_spec.SetField(extractedrecord.FieldReleaseDate, field.TypeString, value)
	}
	if eruo.mutation.ReleaseDateCleared() {
		_spec.ClearField(extractedrecord.FieldReleaseDate, field.TypeString)
	}
	if value, ok := eruo.mutation.ReservationReleaseDate(); ok {
		_spec.SetField(extractedrecord.FieldReservationReleaseDate, field.TypeString, value)
	}
	if eruo.mutation.ReservationReleaseDateCleared() {
		_spec.ClearField(extractedrecord.FieldReservationReleaseDate, field.TypeString)
	}
	if value, ok := eruo.mutation.ReservationDeadline(); ok {
		_spec.SetField(extractedrecord.FieldReservationDeadline, field.TypeString, value)
	}
	if eruo.mutation.ReservationDeadlineCleared() {
		_spec.ClearField(extractedrecord.FieldReservationDeadline, field.TypeString)
	}
	if value, ok := eruo.mutation.ReservationShippingDate(); ok {
		_spec.SetField(extractedrecord.FieldReservationShippingDate, field.TypeString, value)
	}
	if eruo.mutation.ReservationShippingDateCleared() {
		_spec.ClearField(extractedrecord.FieldReservationShippingDate, field.TypeString)
	}
	if value, ok := eruo.mutation.Dimensions(); ok {
		_spec.SetField(extractedrecord.FieldDimensions, field.TypeString, value)
	}
	if eruo.mutation.DimensionsCleared() {
		_spec.ClearField(extractedrecord.FieldDimensions, field.TypeString)
	}
	if value, ok := eruo.mutation.SingleProductSize(); ok {
		_spec.SetField(extractedrecord.FieldSingleProductSize, field.TypeString, value)
	}
	if eruo.mutation.SingleProductSizeCleared() {
		_spec.ClearField(extractedrecord.FieldSingleProductSize, field.TypeString)
	}
	if value, ok := eruo.mutation.PackageSize(); ok {
		_spec.SetField(extractedrecord.FieldPackageSize, field.TypeString, value)
	}
	if eruo.mutation.PackageSizeCleared() {
		_spec.ClearField(extractedrecord.FieldPackageSize, field.TypeString)
	}
	if value, ok := eruo.mutation.InnerBoxSize(); ok {
		_spec.SetField(extractedrecord.FieldInnerBoxSize, field.TypeString, value)
	}
	if eruo.mutation.InnerBoxSizeCleared() {
		_spec.ClearField(extractedrecord.FieldInnerBoxSize, field.TypeString)
	}
	if value, ok := eruo.mutation.CartonSize(); ok {
		_spec.SetField(extractedrecord.FieldCartonSize, field.TypeString, value)
	}
	if eruo.mutation.CartonSizeCleared() {
		_spec.ClearField(extractedrecord.FieldCartonSize, field.TypeString)
	}
	if value, ok := eruo.mutation.Weight(); ok {
		_spec.SetField(extractedrecord.FieldWeight, field.TypeString, value)
	}
	if eruo.mutation.WeightCleared() {
		_spec.ClearField(extractedrecord.FieldWeight, field.TypeString)
	}
	if value, ok := eruo.mutation.PackageType(); ok {
		_spec.SetField(extractedrecord.FieldPackageType, field.TypeString, value)
	}
	if eruo.mutation.PackageTypeCleared() {
		_spec.ClearField(extractedrecord.FieldPackageType, field.TypeString)
	}
	if value, ok := eruo.mutation.ProtectiveFilm(); ok {
		_spec.SetField(extractedrecord.FieldProtectiveFilm, field.TypeString, value)
	}
	if eruo.mutation.ProtectiveFilmCleared() {
		_spec.ClearField(extractedrecord.FieldProtectiveFilm, field.TypeString)
	}
	if value, ok := eruo.mutation.QuantityPerPack(); ok {
		_spec.SetField(extractedrecord.FieldQuantityPerPack, field.TypeString, value)
	}
	if eruo.mutation.QuantityPerPackCleared() {
		_spec.ClearField(extractedrecord.FieldQuantityPerPack, field.TypeString)
	}
	if value, ok := eruo.mutation.CasePackQuantity(); ok {
		_spec.SetField(extractedrecord.FieldCasePackQuantity, field.TypeInt, value)
	}
	if value, ok := eruo.mutation.AddedCasePackQuantity(); ok {
		_spec.AddField(extractedrecord.FieldCasePackQuantity, field.TypeInt, value)
	}
	if eruo.mutation.CasePackQuantityCleared() {
		_spec.ClearField(extractedrecord.FieldCasePackQuantity, field.TypeInt)
	}
	if value, ok := eruo.mutation.InnerBoxGtin(); ok {
		_spec.SetField(extractedrecord.FieldInnerBoxGtin, field.TypeString, value)
	}
	if eruo.mutation.InnerBoxGtinCleared() {
		_spec.ClearField(extractedrecord.FieldInnerBoxGtin, field.TypeString)
	}
	if value, ok := eruo.mutation.OuterBoxGtin(); ok {
		_spec.SetField(extractedrecord.FieldOuterBoxGtin, field.TypeString, value)
	}
	if eruo.mutation.OuterBoxGtinCleared() {
		_spec.ClearField(extractedrecord.FieldOuterBoxGtin, field.TypeString)
	}
	if value, ok := eruo.mutation.Category(); ok {
		_spec.SetField(extractedrecord.FieldCategory, field.TypeString, value)
	}
	if eruo.mutation.CategoryCleared() {
		_spec.ClearField(extractedrecord.FieldCategory, field.TypeString)
	}
	if value, ok := eruo.mutation.MajorCategory(); ok {
		_spec.SetField(extractedrecord.FieldMajorCategory, field.TypeString, value)
	}
	if eruo.mutation.MajorCategoryCleared() {
		_spec.ClearField(extractedrecord.FieldMajorCategory, field.TypeString)
	}
	if value, ok := eruo.mutation.MinorCategory(); ok {
		_spec.SetField(extractedrecord.FieldMinorCategory, field.TypeString, value)
	}
	if eruo.mutation.MinorCategoryCleared() {
		_spec.ClearField(extractedrecord.FieldMinorCategory, field.TypeString)
	}
	if value, ok := eruo.mutation.GenreName(); ok {
		_spec.SetField(extractedrecord.FieldGenreName, field.TypeString, value)
	}
	if eruo.mutation.GenreNameCleared() {
		_spec.ClearField(extractedrecord.FieldGenreName, field.TypeString)
	}
	if value, ok := eruo.mutation.Classification(); ok {
		_spec.SetField(extractedrecord.FieldClassification, field.TypeString, value)
	}
	if eruo.mutation.ClassificationCleared() {
		_spec.ClearField(extractedrecord.FieldClassification, field.TypeString)
	}
	if value, ok := eruo.mutation.InStore(); ok {
		_spec.SetField(extractedrecord.FieldInStore, field.TypeString, value)
	}
	if eruo.mutation.InStoreCleared() {
		_spec.ClearField(extractedrecord.FieldInStore, field.TypeString)
	}
	if value, ok := eruo.mutation.LotNumber(); ok {
		_spec.SetField(extractedrecord.FieldLotNumber, field.TypeString, value)
	}
	if eruo.mutation.LotNumberCleared() {
		_spec.ClearField(extractedrecord.FieldLotNumber, field.TypeString)
	}
	if value, ok := eruo.mutation.Color(); ok {
		_spec.SetField(extractedrecord.FieldColor, field.TypeString, value)
	}
	if eruo.mutation.ColorCleared() {
		_spec.ClearField(extractedrecord.FieldColor, field.TypeString)
	}
	if value, ok := eruo.mutation.Material(); ok {
		_spec.SetField(extractedrecord.FieldMaterial, field.TypeString, value)
	}
	if eruo.mutation.MaterialCleared() {
		_spec.ClearField(extractedrecord.FieldMaterial, field.TypeString)
	}
	if value, ok := eruo.mutation.Origin(); ok {
		_spec.SetField(extractedrecord.FieldOrigin, field.TypeString, value)
	}
	if eruo.mutation.OriginCleared() {
		_spec.ClearField(extractedrecord.FieldOrigin, field.TypeString)
	}
	if value, ok := eruo.mutation.CountryOfOrigin(); ok {
		_spec.SetField(extractedrecord.FieldCountryOfOrigin, field.TypeString, value)
	}
	if eruo.mutation.CountryOfOriginCleared() {
		_spec.ClearField(extractedrecord.FieldCountryOfOrigin, field.TypeString)
	}
	if value, ok := eruo.mutation.TargetAge(); ok {
		_spec.SetField(extractedrecord.FieldTargetAge, field.TypeString, value)
	}
	if eruo.mutation.TargetAgeCleared() {
		_spec.ClearField(extractedrecord.FieldTargetAge, field.TypeString)
	}
	if value, ok := eruo.mutation.Warranty(); ok {
		_spec.SetField(extractedrecord.FieldWarranty, field.TypeString, value)
	}
	if eruo.mutation.WarrantyCleared() {
		_spec.ClearField(extractedrecord.FieldWarranty, field.TypeString)
	}
	if value, ok := eruo.mutation.Description(); ok {
		_spec.SetField(extractedrecord.FieldDescription, field.TypeString, value)
	}
	if eruo.mutation.DescriptionCleared() {
		_spec.ClearField(extractedrecord.FieldDescription, field.TypeString)
	}
	if value, ok := eruo.mutation.ImageUrls(); ok {
		_spec.SetField(extractedrecord.FieldImageUrls, field.TypeJSON, value)
	}
	if value, ok := eruo.mutation.AppendedImageUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedrecord.FieldImageUrls, value)
		})
	}
	if eruo.mutation.ImageUrlsCleared() {
		_spec.ClearField(extractedrecord.FieldImageUrls, field.TypeJSON)
	}
	if value, ok := eruo.mutation.RawText(); ok {
		_spec.SetField(extractedrecord.FieldRawText, field.TypeString, value)
	}
	if eruo.mutation.RawTextCleared() {
		_spec.ClearField(extractedrecord.FieldRawText, field.TypeString)
	}
	if value, ok := eruo.mutation.SectionText(); ok {
		_spec.SetField(extractedrecord.FieldSectionText, field.TypeString, value)
	}
	if eruo.mutation.SectionTextCleared() {
		_spec.ClearField(extractedrecord.FieldSectionText, field.TypeString)
	}
	if value, ok := eruo.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractedrecord.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := eruo.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractedrecord.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := eruo.mutation.Status(); ok {
		_spec.SetField(extractedrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := eruo.mutation.NeedsReview(); ok {
		_spec.SetField(extractedrecord.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := eruo.mutation.IsValidated(); ok {
		_spec.SetField(extractedrecord.FieldIsValidated, field.TypeBool, value)
	}
	if value, ok := eruo.mutation.IsMultiProduct(); ok {
		_spec.SetField(extractedrecord.FieldIsMultiProduct, field.TypeBool, value)
	}
	if value, ok := eruo.mutation.TotalProductsInFile(); ok {
		_spec.SetField(extractedrecord.FieldTotalProductsInFile, field.TypeInt, value)
	}
	if value, ok := eruo.mutation.AddedTotalProductsInFile(); ok {
		_spec.AddField(extractedrecord.FieldTotalProductsInFile, field.TypeInt, value)
	}
	if value, ok := eruo.mutation.ProductIndex(); ok {
		_spec.SetField(extractedrecord.FieldProductIndex, field.TypeInt, value)
	}
	if value, ok := eruo.mutation.AddedProductIndex(); ok {
		_spec.AddField(extractedrecord.FieldProductIndex, field.TypeInt, value)
	}
	if value, ok := eruo.mutation.ErrorMessage(); ok {
		_spec.SetField(extractedrecord.FieldErrorMessage, field.TypeString, value)
	}
	if eruo.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractedrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := eruo.mutation.CreatedAt(); ok {
		_spec.SetField(extractedrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := eruo.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if eruo.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eruo.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if eruo.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eruo.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedRecord{config: eruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, eruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	eruo.mutation.done = true
	return _node, nil
}
