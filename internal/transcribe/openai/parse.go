package openai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

const (
	// confidence assigned when the model omits its own estimate
	defaultConfidence = 85
	// confidence assigned when the reply is not JSON at all and we keep
	// the plain text; low enough to flag the records for review
	plainTextConfidence = 60
)

var jsonFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// replyPayload is the shape we ask the model for.
type replyPayload struct {
	RawText    string           `json:"raw_text"`
	Confidence *float64         `json:"confidence"`
	Products   []productPayload `json:"products"`
}

// productPayload tolerates strings and numbers in numeric fields.
type productPayload struct {
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	JANCode       string          `json:"jan_code"`
	Price         json.RawMessage `json:"price"`
	ReleaseDate   string          `json:"release_date"`
	CharacterName string          `json:"character_name"`
	Dimensions    string          `json:"dimensions"`
	Material      string          `json:"material"`
	Origin        string          `json:"origin"`
	TargetAge     string          `json:"target_age"`
	Description   string          `json:"description"`
}

// ParseReply decodes a model reply, recovering from the usual ways a
// chat model mangles a JSON answer. It never fails on non-JSON text:
// the reply is kept as a plain transcription with low confidence.
func ParseReply(content string) (entity.Transcription, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return entity.Transcription{}, fmt.Errorf("empty model reply")
	}

	if tr, ok := decodePayload(content); ok {
		return tr, nil
	}
	if m := jsonFence.FindStringSubmatch(content); m != nil {
		if tr, ok := decodePayload(strings.TrimSpace(m[1])); ok {
			return tr, nil
		}
	}
	// a bare products array, without the wrapper object
	if strings.HasPrefix(content, "[") {
		var products []productPayload
		if err := json.Unmarshal([]byte(content), &products); err == nil {
			return entity.Transcription{
				Text:       content,
				Confidence: defaultConfidence,
				Products:   coerceProducts(products),
			}, nil
		}
	}

	return entity.Transcription{
		Text:       content,
		Confidence: plainTextConfidence,
	}, nil
}

func decodePayload(content string) (entity.Transcription, bool) {
	if !strings.HasPrefix(content, "{") {
		return entity.Transcription{}, false
	}
	var generic any
	if err := json.Unmarshal([]byte(content), &generic); err != nil {
		return entity.Transcription{}, false
	}
	if err := validateReply(generic); err != nil {
		return entity.Transcription{}, false
	}
	var payload replyPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return entity.Transcription{}, false
	}

	conf := float32(defaultConfidence)
	if payload.Confidence != nil {
		conf = float32(*payload.Confidence)
	}
	return entity.Transcription{
		Text:       payload.RawText,
		Confidence: conf,
		Products:   coerceProducts(payload.Products),
	}, true
}

func coerceProducts(payloads []productPayload) []entity.RecordFields {
	out := make([]entity.RecordFields, 0, len(payloads))
	for _, p := range payloads {
		var f entity.RecordFields
		f.ProductName = optStr(p.ProductName)
		f.SKU = optStr(p.SKU)
		f.JANCode = optStr(p.JANCode)
		f.Price = optAmount(p.Price)
		f.ReleaseDate = optStr(p.ReleaseDate)
		f.CharacterName = optStr(p.CharacterName)
		f.Dimensions = optStr(p.Dimensions)
		f.Material = optStr(p.Material)
		f.Origin = optStr(p.Origin)
		f.TargetAge = optStr(p.TargetAge)
		f.Description = optStr(p.Description)
		if hasAny(f) {
			out = append(out, f)
		}
	}
	return out
}

func hasAny(f entity.RecordFields) bool {
	return f.ProductName != nil || f.SKU != nil || f.JANCode != nil ||
		f.Price != nil || f.ReleaseDate != nil || f.CharacterName != nil ||
		f.Dimensions != nil || f.Material != nil || f.Origin != nil ||
		f.TargetAge != nil || f.Description != nil
}

func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// optAmount accepts 1100, "1100", "¥1,100" and "1,100円".
func optAmount(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.NewReplacer("¥", "", "￥", "", "円", "", ",", "", " ", "").Replace(s)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &n
}
