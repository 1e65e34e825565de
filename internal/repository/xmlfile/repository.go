package xmlfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var errPathEmpty = errors.New("path must not be empty")

// ErrMissingElement reports an article record lacking one of its child elements.
var ErrMissingElement = errors.New("missing element")

// Document mirrors the persisted warehouse file.
type Document struct {
	XMLName  xml.Name        `xml:"Warehouse"`
	Articles []ArticleRecord `xml:"Article"`
}

// ArticleRecord is one persisted article. Element order matches the file layout.
type ArticleRecord struct {
	Code          int             `xml:"Code,attr"`
	Name          string          `xml:"Name"`
	Brand         string          `xml:"Brand"`
	BuyingPrice   decimal.Decimal `xml:"BuyingPrice"`
	SellingPrice  decimal.Decimal `xml:"SellingPrice"`
	Units         int             `xml:"Units"`
	SecurityStock int             `xml:"SecurityStock"`
	MaxStock      int             `xml:"MaxStock"`
}

// rawRecord decodes an article with pointer fields so absent elements can be
// told apart from zero values.
type rawRecord struct {
	Code          int              `xml:"Code,attr"`
	Name          *string          `xml:"Name"`
	Brand         *string          `xml:"Brand"`
	BuyingPrice   *decimal.Decimal `xml:"BuyingPrice"`
	SellingPrice  *decimal.Decimal `xml:"SellingPrice"`
	Units         *int             `xml:"Units"`
	SecurityStock *int             `xml:"SecurityStock"`
	MaxStock      *int             `xml:"MaxStock"`
}

type rawDocument struct {
	XMLName  xml.Name    `xml:"Warehouse"`
	Articles []rawRecord `xml:"Article"`
}

func (raw rawRecord) record() (ArticleRecord, error) {
	missing := func(elem string) error {
		return fmt.Errorf("article code %d: %s: %w", raw.Code, elem, ErrMissingElement)
	}
	switch {
	case raw.Name == nil:
		return ArticleRecord{}, missing("Name")
	case raw.Brand == nil:
		return ArticleRecord{}, missing("Brand")
	case raw.BuyingPrice == nil:
		return ArticleRecord{}, missing("BuyingPrice")
	case raw.SellingPrice == nil:
		return ArticleRecord{}, missing("SellingPrice")
	case raw.Units == nil:
		return ArticleRecord{}, missing("Units")
	case raw.SecurityStock == nil:
		return ArticleRecord{}, missing("SecurityStock")
	case raw.MaxStock == nil:
		return ArticleRecord{}, missing("MaxStock")
	}
	return ArticleRecord{
		Code:          raw.Code,
		Name:          *raw.Name,
		Brand:         *raw.Brand,
		BuyingPrice:   *raw.BuyingPrice,
		SellingPrice:  *raw.SellingPrice,
		Units:         *raw.Units,
		SecurityStock: *raw.SecurityStock,
		MaxStock:      *raw.MaxStock,
	}, nil
}

// Repository defines the persistence operations supported by the XML file adapter.
type Repository interface {
	Read(path string) (Document, error)
	Write(path string, doc Document) error
}

// FileRepository implements Repository on the local filesystem.
type FileRepository struct {
	logger *zap.Logger
}

// NewFileRepository builds a filesystem backed repository instance.
func NewFileRepository(logger *zap.Logger) *FileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepository{logger: logger}
}

// Read decodes the document stored at path. Every article must carry all of
// its child elements; the first incomplete one fails the whole read.
func (r *FileRepository) Read(path string) (Document, error) {
	if path == "" {
		return Document{}, errPathEmpty
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var raw rawDocument
	if err := xml.NewDecoder(f).Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}

	doc := Document{Articles: make([]ArticleRecord, 0, len(raw.Articles))}
	for i, rr := range raw.Articles {
		rec, err := rr.record()
		if err != nil {
			return Document{}, fmt.Errorf("decode %s: article %d: %w", path, i, err)
		}
		doc.Articles = append(doc.Articles, rec)
	}

	r.logger.Debug("warehouse document read", zap.String("path", path), zap.Int("articles", len(doc.Articles)))
	return doc, nil
}

// Write encodes doc and replaces the file at path. A failed write may leave a
// truncated file behind.
func (r *FileRepository) Write(path string, doc Document) error {
	if path == "" {
		return errPathEmpty
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode warehouse document: %w", err)
	}

	data := make([]byte, 0, len(xml.Header)+len(body)+1)
	data = append(data, xml.Header...)
	data = append(data, body...)
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	r.logger.Debug("warehouse document written", zap.String("path", path), zap.Int("articles", len(doc.Articles)))
	return nil
}
