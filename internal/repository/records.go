package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/gen/ent"
	entrec "github.com/hajime-ito/catalog-extractor/gen/ent/extractedrecord"
	"github.com/hajime-ito/catalog-extractor/internal/common"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

// RecordFilter narrows List and Export queries.
type RecordFilter struct {
	OwnerID     uuid.UUID
	JobID       *uuid.UUID
	FileID      *uuid.UUID
	Status      *constants.RecordStatus
	NeedsReview *bool
	Limit       int
	Offset      int
}

type ExtractedRecordRepository interface {
	CreateBatch(ctx context.Context, records []entity.ExtractedRecord) error
	Get(ctx context.Context, id uuid.UUID) (*entity.ExtractedRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]*entity.ExtractedRecord, error)
	Count(ctx context.Context, filter RecordFilter) (int, error)
	Validate(ctx context.Context, id uuid.UUID, corrections *entity.RecordFields) (*entity.ExtractedRecord, error)
}

type extractedRecordRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractedRecordRepository(entc *ent.Client, log *slog.Logger) ExtractedRecordRepository {
	return &extractedRecordRepo{ent: entc, log: log}
}

func (r *extractedRecordRepo) CreateBatch(ctx context.Context, records []entity.ExtractedRecord) error {
	if len(records) == 0 {
		return nil
	}
	builders := make([]*ent.ExtractedRecordCreate, len(records))
	for i, rec := range records {
		builders[i] = r.builder(rec)
	}
	if _, err := r.ent.ExtractedRecord.CreateBulk(builders...).Save(ctx); err != nil {
		r.log.Error("extracted_record batch create failed", "count", len(records), "error", err)
		return err
	}
	r.log.Info("extracted_records created", "count", len(records))
	return nil
}

func (r *extractedRecordRepo) builder(rec entity.ExtractedRecord) *ent.ExtractedRecordCreate {
	f := rec.Fields
	c := r.ent.ExtractedRecord.Create().
		SetID(rec.ID).
		SetOwnerID(rec.OwnerID).
		SetNillableConversionJobID(rec.ConversionJobID).
		SetSourceFileID(rec.SourceFileID).
		SetNillableProductName(f.ProductName).
		SetNillableSku(f.SKU).
		SetNillableProductCode(f.ProductCode).
		SetNillableJanCode(f.JANCode).
		SetNillableCharacterName(f.CharacterName).
		SetNillableBrand(f.Brand).
		SetNillableManufacturer(f.Manufacturer).
		SetNillableSupplierName(f.SupplierName).
		SetNillableIPName(f.IPName).
		SetNillablePrice(f.Price).
		SetNillableReferenceSalesPrice(f.ReferenceSalesPrice).
		SetNillableWholesalePrice(f.WholesalePrice).
		SetNillableOrderAmount(f.OrderAmount).
		SetNillableStock(f.Stock).
		SetNillableWholesaleQuantity(f.WholesaleQuantity).
		SetNillableReleaseDate(f.ReleaseDate).
		SetNillableReservationReleaseDate(f.ReservationReleaseDate).
		SetNillableReservationDeadline(f.ReservationDeadline).
		SetNillableReservationShippingDate(f.ReservationShippingDate).
		SetNillableDimensions(f.Dimensions).
		SetNillableSingleProductSize(f.SingleProductSize).
		SetNillablePackageSize(f.PackageSize).
		SetNillableInnerBoxSize(f.InnerBoxSize).
		SetNillableCartonSize(f.CartonSize).
		SetNillableWeight(f.Weight).
		SetNillablePackageType(f.PackageType).
		SetNillableProtectiveFilm(f.ProtectiveFilm).
		SetNillableQuantityPerPack(f.QuantityPerPack).
		SetNillableCasePackQuantity(f.CasePackQuantity).
		SetNillableInnerBoxGtin(f.InnerBoxGTIN).
		SetNillableOuterBoxGtin(f.OuterBoxGTIN).
		SetNillableCategory(f.Category).
		SetNillableMajorCategory(f.MajorCategory).
		SetNillableMinorCategory(f.MinorCategory).
		SetNillableGenreName(f.GenreName).
		SetNillableClassification(f.Classification).
		SetNillableInStore(f.InStore).
		SetNillableLotNumber(f.LotNumber).
		SetNillableColor(f.Color).
		SetNillableMaterial(f.Material).
		SetNillableOrigin(f.Origin).
		SetNillableCountryOfOrigin(f.CountryOfOrigin).
		SetNillableTargetAge(f.TargetAge).
		SetNillableWarranty(f.Warranty).
		SetNillableDescription(f.Description).
		SetRawText(rec.RawText).
		SetSectionText(rec.SectionText).
		SetConfidenceScore(rec.ConfidenceScore).
		SetStatus(string(rec.Status)).
		SetNeedsReview(rec.NeedsReview).
		SetIsValidated(rec.IsValidated).
		SetIsMultiProduct(rec.IsMultiProduct).
		SetTotalProductsInFile(rec.TotalProductsInFile).
		SetProductIndex(rec.ProductIndex).
		SetNillableErrorMessage(rec.ErrorMessage)
	if len(f.ImageURLs) > 0 {
		c.SetImageUrls(f.ImageURLs)
	}
	return c
}

func (r *extractedRecordRepo) Get(ctx context.Context, id uuid.UUID) (*entity.ExtractedRecord, error) {
	row, err := r.ent.ExtractedRecord.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRecord(row), nil
}

func (r *extractedRecordRepo) List(ctx context.Context, filter RecordFilter) ([]*entity.ExtractedRecord, error) {
	q := r.query(filter).
		Order(ent.Desc(entrec.FieldCreatedAt), ent.Asc(entrec.FieldProductIndex))
	if filter.Limit > 0 {
		q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q.Offset(filter.Offset)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractedRecord, len(rows))
	for i, row := range rows {
		out[i] = toRecord(row)
	}
	return out, nil
}

func (r *extractedRecordRepo) Count(ctx context.Context, filter RecordFilter) (int, error) {
	return r.query(filter).Count(ctx)
}

func (r *extractedRecordRepo) query(filter RecordFilter) *ent.ExtractedRecordQuery {
	q := r.ent.ExtractedRecord.Query().
		Where(entrec.OwnerID(filter.OwnerID))
	if filter.JobID != nil {
		q = q.Where(entrec.ConversionJobID(*filter.JobID))
	}
	if filter.FileID != nil {
		q = q.Where(entrec.SourceFileID(*filter.FileID))
	}
	if filter.Status != nil {
		q = q.Where(entrec.Status(string(*filter.Status)))
	}
	if filter.NeedsReview != nil {
		q = q.Where(entrec.NeedsReview(*filter.NeedsReview))
	}
	return q
}

// Validate marks a record human-confirmed, applying any field corrections
// first. A validated record stays validated; validating twice is an error.
func (r *extractedRecordRepo) Validate(ctx context.Context, id uuid.UUID, corrections *entity.RecordFields) (*entity.ExtractedRecord, error) {
	row, err := r.ent.ExtractedRecord.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.IsValidated {
		return nil, common.ErrRecordValidated
	}

	upd := r.ent.ExtractedRecord.UpdateOneID(id).
		SetStatus(string(constants.RecordStatusValidated)).
		SetIsValidated(true).
		SetNeedsReview(false)
	if corrections != nil {
		applyCorrections(upd, *corrections)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("extracted_record validate failed", "record_id", id, "error", err)
		return nil, err
	}
	r.log.Info("extracted_record validated", "record_id", id)
	return toRecord(updated), nil
}

// applyCorrections overwrites only the fields the reviewer supplied.
func applyCorrections(upd *ent.ExtractedRecordUpdateOne, f entity.RecordFields) {
	upd.SetNillableProductName(f.ProductName).
		SetNillableSku(f.SKU).
		SetNillableProductCode(f.ProductCode).
		SetNillableJanCode(f.JANCode).
		SetNillableCharacterName(f.CharacterName).
		SetNillableBrand(f.Brand).
		SetNillableManufacturer(f.Manufacturer).
		SetNillableSupplierName(f.SupplierName).
		SetNillableIPName(f.IPName).
		SetNillablePrice(f.Price).
		SetNillableReferenceSalesPrice(f.ReferenceSalesPrice).
		SetNillableWholesalePrice(f.WholesalePrice).
		SetNillableOrderAmount(f.OrderAmount).
		SetNillableStock(f.Stock).
		SetNillableWholesaleQuantity(f.WholesaleQuantity).
		SetNillableReleaseDate(f.ReleaseDate).
		SetNillableReservationReleaseDate(f.ReservationReleaseDate).
		SetNillableReservationDeadline(f.ReservationDeadline).
		SetNillableReservationShippingDate(f.ReservationShippingDate).
		SetNillableDimensions(f.Dimensions).
		SetNillableSingleProductSize(f.SingleProductSize).
		SetNillablePackageSize(f.PackageSize).
		SetNillableInnerBoxSize(f.InnerBoxSize).
		SetNillableCartonSize(f.CartonSize).
		SetNillableWeight(f.Weight).
		SetNillablePackageType(f.PackageType).
		SetNillableProtectiveFilm(f.ProtectiveFilm).
		SetNillableQuantityPerPack(f.QuantityPerPack).
		SetNillableCasePackQuantity(f.CasePackQuantity).
		SetNillableInnerBoxGtin(f.InnerBoxGTIN).
		SetNillableOuterBoxGtin(f.OuterBoxGTIN).
		SetNillableCategory(f.Category).
		SetNillableMajorCategory(f.MajorCategory).
		SetNillableMinorCategory(f.MinorCategory).
		SetNillableGenreName(f.GenreName).
		SetNillableClassification(f.Classification).
		SetNillableInStore(f.InStore).
		SetNillableLotNumber(f.LotNumber).
		SetNillableColor(f.Color).
		SetNillableMaterial(f.Material).
		SetNillableOrigin(f.Origin).
		SetNillableCountryOfOrigin(f.CountryOfOrigin).
		SetNillableTargetAge(f.TargetAge).
		SetNillableWarranty(f.Warranty).
		SetNillableDescription(f.Description)
	if len(f.ImageURLs) > 0 {
		upd.SetImageUrls(f.ImageURLs)
	}
}

func toRecord(e *ent.ExtractedRecord) *entity.ExtractedRecord {
	return &entity.ExtractedRecord{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		ConversionJobID: e.ConversionJobID,
		SourceFileID:    e.SourceFileID,
		Fields: entity.RecordFields{
			ProductName:   e.ProductName,
			SKU:           e.Sku,
			ProductCode:   e.ProductCode,
			JANCode:       e.JanCode,
			CharacterName: e.CharacterName,
			Brand:         e.Brand,
			Manufacturer:  e.Manufacturer,
			SupplierName:  e.SupplierName,
			IPName:        e.IPName,

			Price:               e.Price,
			ReferenceSalesPrice: e.ReferenceSalesPrice,
			WholesalePrice:      e.WholesalePrice,
			OrderAmount:         e.OrderAmount,
			Stock:               e.Stock,
			WholesaleQuantity:   e.WholesaleQuantity,

			ReleaseDate:             e.ReleaseDate,
			ReservationReleaseDate:  e.ReservationReleaseDate,
			ReservationDeadline:     e.ReservationDeadline,
			ReservationShippingDate: e.ReservationShippingDate,

			Dimensions:        e.Dimensions,
			SingleProductSize: e.SingleProductSize,
			PackageSize:       e.PackageSize,
			InnerBoxSize:      e.InnerBoxSize,
			CartonSize:        e.CartonSize,
			Weight:            e.Weight,
			PackageType:       e.PackageType,
			ProtectiveFilm:    e.ProtectiveFilm,

			QuantityPerPack:  e.QuantityPerPack,
			CasePackQuantity: e.CasePackQuantity,
			InnerBoxGTIN:     e.InnerBoxGtin,
			OuterBoxGTIN:     e.OuterBoxGtin,

			Category:       e.Category,
			MajorCategory:  e.MajorCategory,
			MinorCategory:  e.MinorCategory,
			GenreName:      e.GenreName,
			Classification: e.Classification,
			InStore:        e.InStore,
			LotNumber:      e.LotNumber,

			Color:           e.Color,
			Material:        e.Material,
			Origin:          e.Origin,
			CountryOfOrigin: e.CountryOfOrigin,
			TargetAge:       e.TargetAge,
			Warranty:        e.Warranty,
			Description:     e.Description,

			ImageURLs: e.ImageUrls,
		},
		RawText:             e.RawText,
		SectionText:         e.SectionText,
		ConfidenceScore:     e.ConfidenceScore,
		Status:              constants.RecordStatus(e.Status),
		NeedsReview:         e.NeedsReview,
		IsValidated:         e.IsValidated,
		IsMultiProduct:      e.IsMultiProduct,
		TotalProductsInFile: e.TotalProductsInFile,
		ProductIndex:        e.ProductIndex,
		ErrorMessage:        e.ErrorMessage,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
