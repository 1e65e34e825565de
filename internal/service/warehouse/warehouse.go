package warehouse

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/repository/xmlfile"
)

// Warehouse owns every article and enforces the inventory invariants: unique
// codes, unique (name, brand) pairs and non-negative stock.
type Warehouse struct {
	articles []*models.Article
	byCode   map[int]*models.Article
	nextCode int
	repo     xmlfile.Repository
	logger   *zap.Logger
}

// Option customizes a Warehouse at construction time.
type Option func(*Warehouse)

// WithLogger sets the logger used for persistence and stock events.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Warehouse) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithRepository replaces the XML file repository.
func WithRepository(repo xmlfile.Repository) Option {
	return func(w *Warehouse) {
		if repo != nil {
			w.repo = repo
		}
	}
}

// WithFirstCode sets the code handed to the first article.
func WithFirstCode(code int) Option {
	return func(w *Warehouse) { w.nextCode = code }
}

// New creates an empty warehouse.
func New(opts ...Option) *Warehouse {
	w := &Warehouse{
		byCode: make(map[int]*models.Article),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.repo == nil {
		w.repo = xmlfile.NewFileRepository(w.logger)
	}
	return w
}

// NewFromArticles creates a warehouse holding the given articles in order.
func NewFromArticles(params []models.ArticleParams, opts ...Option) (*Warehouse, error) {
	w := New(opts...)
	for i, p := range params {
		if _, err := w.AddArticle(p); err != nil {
			return nil, fmt.Errorf("article %d: %w", i, err)
		}
	}
	return w, nil
}

// Open creates a warehouse from the XML file at path.
func Open(path string, opts ...Option) (*Warehouse, error) {
	w := New(opts...)
	if err := w.Load(path); err != nil {
		return nil, err
	}
	return w, nil
}

// AddArticle builds an article with the next code and appends it.
func (w *Warehouse) AddArticle(p models.ArticleParams) (*models.Article, error) {
	key := models.ArticleKey{Name: p.Name, Brand: p.Brand}
	if w.findByKey(key) != nil {
		return nil, fmt.Errorf("%s/%s: %w", p.Name, p.Brand, models.ErrDuplicateArticle)
	}

	article, err := models.NewArticle(w.nextCode, p)
	if err != nil {
		return nil, err
	}
	if _, exists := w.byCode[article.Code()]; exists {
		return nil, fmt.Errorf("code %d: %w", article.Code(), models.ErrDuplicateArticle)
	}

	w.nextCode++
	w.articles = append(w.articles, article)
	w.byCode[article.Code()] = article

	w.logger.Debug("article added", zap.Int("code", article.Code()), zap.String("name", article.Name()), zap.String("brand", article.Brand()))
	return article, nil
}

// DeleteArticle removes the article identified by code.
func (w *Warehouse) DeleteArticle(code int) error {
	if _, err := w.ReturnArticle(code); err != nil {
		return err
	}

	w.articles = slices.DeleteFunc(w.articles, func(a *models.Article) bool { return a.Code() == code })
	delete(w.byCode, code)

	w.logger.Debug("article deleted", zap.Int("code", code))
	return nil
}

// IncrementUnitsOfArticle adds units to the stock of the article identified by code.
func (w *Warehouse) IncrementUnitsOfArticle(code, units int) error {
	article, err := w.ReturnArticle(code)
	if err != nil {
		return err
	}
	return article.IncreaseUnits(units)
}

// DecreaseUnitsOfArticle removes units from the stock of the article identified by code.
func (w *Warehouse) DecreaseUnitsOfArticle(code, units int) error {
	article, err := w.ReturnArticle(code)
	if err != nil {
		return err
	}
	if err := article.DecreaseUnits(units); err != nil {
		return err
	}

	if article.BelowSecurityStock() {
		w.logger.Warn("article below security stock",
			zap.Int("code", code),
			zap.Int("units", article.Units()),
			zap.Int("security_stock", article.SecurityStock()))
	}
	return nil
}

// ReturnArticle returns the stored article itself; changes made through the
// handle are visible to the warehouse.
func (w *Warehouse) ReturnArticle(code int) (*models.Article, error) {
	article, ok := w.byCode[code]
	if !ok {
		return nil, fmt.Errorf("code %d: %w", code, models.ErrArticleNotFound)
	}
	return article, nil
}

// ModifyArticle overwrites every field of the article identified by code. A
// rejected field aborts the update but keeps the fields already written.
func (w *Warehouse) ModifyArticle(code int, p models.ArticleParams) error {
	article, err := w.ReturnArticle(code)
	if err != nil {
		return err
	}

	if other := w.findByKey(models.ArticleKey{Name: p.Name, Brand: p.Brand}); other != nil && other.Code() != code {
		return fmt.Errorf("%s/%s: %w", p.Name, p.Brand, models.ErrDuplicateArticle)
	}

	return article.Overwrite(p)
}

// Articles returns the stored articles in insertion order.
func (w *Warehouse) Articles() []*models.Article {
	return slices.Clone(w.articles)
}

// Len returns the number of stored articles.
func (w *Warehouse) Len() int {
	return len(w.articles)
}

// BelowSecurityStock lists the articles whose units fell under their advisory minimum.
func (w *Warehouse) BelowSecurityStock() []*models.Article {
	var out []*models.Article
	for _, a := range w.articles {
		if a.BelowSecurityStock() {
			out = append(out, a)
		}
	}
	return out
}

func (w *Warehouse) String() string {
	var b strings.Builder
	b.WriteString("Warehouse [articles=[")
	for i, a := range w.articles {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(a.String())
	}
	b.WriteString("]]")
	return b.String()
}

func (w *Warehouse) findByKey(key models.ArticleKey) *models.Article {
	for _, a := range w.articles {
		if a.Key() == key {
			return a
		}
	}
	return nil
}
