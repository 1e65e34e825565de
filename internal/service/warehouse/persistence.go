package warehouse

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/repository/xmlfile"
)

// Load appends every article found in the XML file at path, in document order.
// Persisted codes are ignored; each article receives the next warehouse code.
// Articles appended before a failing element are kept.
func (w *Warehouse) Load(path string) error {
	doc, err := w.repo.Read(path)
	if err != nil {
		w.logger.Error("failed to load warehouse", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: load %s: %w", models.ErrPersistence, path, err)
	}

	for i, rec := range doc.Articles {
		if _, err := w.AddArticle(paramsFromRecord(rec)); err != nil {
			w.logger.Error("failed to load article",
				zap.String("path", path),
				zap.Int("element", i),
				zap.Int("persisted_code", rec.Code),
				zap.Error(err))
			return fmt.Errorf("%w: load %s article %d: %w", models.ErrPersistence, path, i, err)
		}
	}

	w.logger.Info("warehouse loaded", zap.String("path", path), zap.Int("articles", len(doc.Articles)))
	return nil
}

// Save writes every article to the XML file at path.
func (w *Warehouse) Save(path string) error {
	doc := xmlfile.Document{Articles: make([]xmlfile.ArticleRecord, 0, len(w.articles))}
	for _, a := range w.articles {
		doc.Articles = append(doc.Articles, recordFromArticle(a))
	}

	if err := w.repo.Write(path, doc); err != nil {
		w.logger.Error("failed to save warehouse", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: save %s: %w", models.ErrPersistence, path, err)
	}

	w.logger.Info("warehouse saved", zap.String("path", path), zap.Int("articles", len(doc.Articles)))
	return nil
}

func paramsFromRecord(rec xmlfile.ArticleRecord) models.ArticleParams {
	return models.ArticleParams{
		Name:          rec.Name,
		Brand:         rec.Brand,
		BuyingPrice:   rec.BuyingPrice,
		SellingPrice:  rec.SellingPrice,
		Units:         rec.Units,
		SecurityStock: rec.SecurityStock,
		MaxStock:      rec.MaxStock,
	}
}

func recordFromArticle(a *models.Article) xmlfile.ArticleRecord {
	return xmlfile.ArticleRecord{
		Code:          a.Code(),
		Name:          a.Name(),
		Brand:         a.Brand(),
		BuyingPrice:   a.BuyingPrice(),
		SellingPrice:  a.SellingPrice(),
		Units:         a.Units(),
		SecurityStock: a.SecurityStock(),
		MaxStock:      a.MaxStock(),
	}
}
