package utils

import (
	"time"

	catalogpb "github.com/hajime-ito/catalog-extractor/gen/proto/catalog/v1"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func intPtr(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

func int32Ptr(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}

func ToPBFile(f *entity.UploadFile) *catalogpb.UploadFile {
	return &catalogpb.UploadFile{
		Id:         f.ID.String(),
		OwnerId:    f.OwnerID.String(),
		Filename:   f.Filename,
		FilePath:   f.FilePath,
		Format:     f.Format,
		FileSize:   f.FileSize,
		Status:     f.Status,
		UploadedAt: f.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBJob(j *entity.ConversionJob) *catalogpb.ConversionJob {
	fileIDs := make([]string, len(j.FileIDs))
	for i, id := range j.FileIDs {
		fileIDs[i] = id.String()
	}
	return &catalogpb.ConversionJob{
		Id:             j.ID.String(),
		OwnerId:        j.OwnerID.String(),
		Name:           j.Name,
		FileIds:        fileIDs,
		TotalFiles:     int32(j.TotalFiles),
		ProcessedFiles: int32(j.ProcessedFiles),
		Status:         string(j.Status),
		ErrorMessage:   strOrEmpty(j.ErrorMessage),
		StartedAt:      timeOrEmpty(j.StartedAt),
		CompletedAt:    timeOrEmpty(j.CompletedAt),
		CreatedAt:      j.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBRecord(r *entity.ExtractedRecord) *catalogpb.ExtractedRecord {
	jobID := ""
	if r.ConversionJobID != nil {
		jobID = r.ConversionJobID.String()
	}
	return &catalogpb.ExtractedRecord{
		Id:                  r.ID.String(),
		OwnerId:             r.OwnerID.String(),
		ConversionJobId:     jobID,
		SourceFileId:        r.SourceFileID.String(),
		Fields:              ToPBFields(r.Fields),
		SectionText:         r.SectionText,
		ConfidenceScore:     r.ConfidenceScore,
		Status:              string(r.Status),
		NeedsReview:         r.NeedsReview,
		IsValidated:         r.IsValidated,
		IsMultiProduct:      r.IsMultiProduct,
		TotalProductsInFile: int32(r.TotalProductsInFile),
		ProductIndex:        int32(r.ProductIndex),
		ErrorMessage:        strOrEmpty(r.ErrorMessage),
		CreatedAt:           r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:           r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBFields(f entity.RecordFields) *catalogpb.ProductFields {
	return &catalogpb.ProductFields{
		ProductName:   f.ProductName,
		Sku:           f.SKU,
		ProductCode:   f.ProductCode,
		JanCode:       f.JANCode,
		CharacterName: f.CharacterName,
		Brand:         f.Brand,
		Manufacturer:  f.Manufacturer,
		SupplierName:  f.SupplierName,
		IpName:        f.IPName,

		Price:               f.Price,
		ReferenceSalesPrice: f.ReferenceSalesPrice,
		WholesalePrice:      f.WholesalePrice,
		OrderAmount:         f.OrderAmount,
		Stock:               int32Ptr(f.Stock),
		WholesaleQuantity:   int32Ptr(f.WholesaleQuantity),

		ReleaseDate:             f.ReleaseDate,
		ReservationReleaseDate:  f.ReservationReleaseDate,
		ReservationDeadline:     f.ReservationDeadline,
		ReservationShippingDate: f.ReservationShippingDate,

		Dimensions:        f.Dimensions,
		SingleProductSize: f.SingleProductSize,
		PackageSize:       f.PackageSize,
		InnerBoxSize:      f.InnerBoxSize,
		CartonSize:        f.CartonSize,
		Weight:            f.Weight,
		PackageType:       f.PackageType,
		ProtectiveFilm:    f.ProtectiveFilm,

		QuantityPerPack:  f.QuantityPerPack,
		CasePackQuantity: int32Ptr(f.CasePackQuantity),
		InnerBoxGtin:     f.InnerBoxGTIN,
		OuterBoxGtin:     f.OuterBoxGTIN,

		Category:       f.Category,
		MajorCategory:  f.MajorCategory,
		MinorCategory:  f.MinorCategory,
		GenreName:      f.GenreName,
		Classification: f.Classification,
		InStore:        f.InStore,
		LotNumber:      f.LotNumber,

		Color:           f.Color,
		Material:        f.Material,
		Origin:          f.Origin,
		CountryOfOrigin: f.CountryOfOrigin,
		TargetAge:       f.TargetAge,
		Warranty:        f.Warranty,
		Description:     f.Description,

		ImageUrls: f.ImageURLs,
	}
}

// FieldsFromPB converts reviewer corrections; unset proto fields stay nil
// so only supplied values overwrite the record.
func FieldsFromPB(p *catalogpb.ProductFields) *entity.RecordFields {
	if p == nil {
		return nil
	}
	return &entity.RecordFields{
		ProductName:   p.ProductName,
		SKU:           p.Sku,
		ProductCode:   p.ProductCode,
		JANCode:       p.JanCode,
		CharacterName: p.CharacterName,
		Brand:         p.Brand,
		Manufacturer:  p.Manufacturer,
		SupplierName:  p.SupplierName,
		IPName:        p.IpName,

		Price:               p.Price,
		ReferenceSalesPrice: p.ReferenceSalesPrice,
		WholesalePrice:      p.WholesalePrice,
		OrderAmount:         p.OrderAmount,
		Stock:               intPtr(p.Stock),
		WholesaleQuantity:   intPtr(p.WholesaleQuantity),

		ReleaseDate:             p.ReleaseDate,
		ReservationReleaseDate:  p.ReservationReleaseDate,
		ReservationDeadline:     p.ReservationDeadline,
		ReservationShippingDate: p.ReservationShippingDate,

		Dimensions:        p.Dimensions,
		SingleProductSize: p.SingleProductSize,
		PackageSize:       p.PackageSize,
		InnerBoxSize:      p.InnerBoxSize,
		CartonSize:        p.CartonSize,
		Weight:            p.Weight,
		PackageType:       p.PackageType,
		ProtectiveFilm:    p.ProtectiveFilm,

		QuantityPerPack:  p.QuantityPerPack,
		CasePackQuantity: intPtr(p.CasePackQuantity),
		InnerBoxGTIN:     p.InnerBoxGtin,
		OuterBoxGTIN:     p.OuterBoxGtin,

		Category:       p.Category,
		MajorCategory:  p.MajorCategory,
		MinorCategory:  p.MinorCategory,
		GenreName:      p.GenreName,
		Classification: p.Classification,
		InStore:        p.InStore,
		LotNumber:      p.LotNumber,

		Color:           p.Color,
		Material:        p.Material,
		Origin:          p.Origin,
		CountryOfOrigin: p.CountryOfOrigin,
		TargetAge:       p.TargetAge,
		Warranty:        p.Warranty,
		Description:     p.Description,

		ImageURLs: p.ImageUrls,
	}
}
