package console

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/scheduler"
	"github.com/mamadbah2/warehouse/internal/service/reporting"
)

// Inventory is the warehouse surface driven by the console.
type Inventory interface {
	AddArticle(p models.ArticleParams) (*models.Article, error)
	DeleteArticle(code int) error
	IncrementUnitsOfArticle(code, units int) error
	DecreaseUnitsOfArticle(code, units int) error
	ReturnArticle(code int) (*models.Article, error)
	ModifyArticle(code int, p models.ArticleParams) error
	Articles() []*models.Article
	Save(path string) error
	String() string
}

type action struct {
	label string
	run   func() error
}

// Session runs the interactive menu loop against an Inventory.
type Session struct {
	inventory Inventory
	reports   *reporting.Service
	autosave  *scheduler.Autosaver
	path      string
	prompt    *Prompter
	menu      *Menu
	actions   []action
	out       io.Writer
	logger    *zap.Logger
	now       func() time.Time
}

// NewSession wires the menu options to the inventory operations. A nil
// autosaver disables scheduled saves.
func NewSession(inventory Inventory, reports *reporting.Service, autosave *scheduler.Autosaver, path string, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reports == nil {
		reports = reporting.NewService(logger)
	}

	s := &Session{
		inventory: inventory,
		reports:   reports,
		autosave:  autosave,
		path:      path,
		prompt:    NewPrompter(in, out),
		out:       out,
		logger:    logger,
		now:       time.Now,
	}
	s.actions = []action{
		{"List", s.list},
		{"Add article", s.add},
		{"Delete article", s.remove},
		{"Modify article", s.modify},
		{"Goods in (increase stock)", s.increase},
		{"Goods out (decrease stock)", s.decrease},
		{"Stock report", s.report},
		{"Save", s.save},
		{"Exit", nil},
	}

	s.menu = NewMenu("Warehouse menu", s.prompt, out)
	for _, a := range s.actions {
		s.menu.Add(a.label)
	}
	return s
}

// Run loops until the exit option is chosen or the input ends.
func (s *Session) Run() error {
	for {
		choice, err := s.menu.Choose()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == s.menu.LastOption() {
			fmt.Fprintln(s.out, "See you next time!")
			return nil
		}

		act := s.actions[choice-1]
		if err := act.run(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.logger.Debug("menu action failed", zap.String("action", act.label), zap.Error(err))
			fmt.Fprintln(s.out, errorMessage(err))
		}

		if saved, err := s.autosave.Checkpoint(s.now()); err != nil {
			fmt.Fprintln(s.out, errorMessage(err))
		} else if saved {
			fmt.Fprintf(s.out, "Warehouse autosaved to %s.\n", s.path)
		}
	}
}

func (s *Session) list() error {
	fmt.Fprintln(s.out, s.inventory.String())
	return nil
}

func (s *Session) add() error {
	p, err := s.readParams("Name of the article to add")
	if err != nil {
		return err
	}
	article, err := s.inventory.AddArticle(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Article added with code %d.\n", article.Code())
	return nil
}

func (s *Session) remove() error {
	code, err := s.prompt.ReadInt("Code of the article to delete")
	if err != nil {
		return err
	}
	return s.inventory.DeleteArticle(code)
}

func (s *Session) modify() error {
	code, err := s.prompt.ReadInt("Code of the article to modify")
	if err != nil {
		return err
	}
	article, err := s.inventory.ReturnArticle(code)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, article)

	p, err := s.readParams("Name")
	if err != nil {
		return err
	}
	return s.inventory.ModifyArticle(article.Code(), p)
}

func (s *Session) increase() error {
	code, err := s.prompt.ReadInt("Code of the article to increase stock")
	if err != nil {
		return err
	}
	units, err := s.prompt.ReadInt("Units")
	if err != nil {
		return err
	}
	return s.inventory.IncrementUnitsOfArticle(code, units)
}

func (s *Session) decrease() error {
	code, err := s.prompt.ReadInt("Code of the article to decrease stock")
	if err != nil {
		return err
	}
	units, err := s.prompt.ReadInt("Units")
	if err != nil {
		return err
	}
	return s.inventory.DecreaseUnitsOfArticle(code, units)
}

func (s *Session) report() error {
	fmt.Fprintln(s.out, reporting.Format(s.reports.Summarize(s.inventory.Articles())))
	return nil
}

func (s *Session) save() error {
	if err := s.inventory.Save(s.path); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Warehouse saved to %s.\n", s.path)
	return nil
}

func (s *Session) readParams(nameMsg string) (models.ArticleParams, error) {
	var (
		p   models.ArticleParams
		err error
	)
	if p.Name, err = s.prompt.ReadString(nameMsg); err != nil {
		return p, err
	}
	if p.Brand, err = s.prompt.ReadString("Brand"); err != nil {
		return p, err
	}
	if p.BuyingPrice, err = s.prompt.ReadDecimal("Buying price"); err != nil {
		return p, err
	}
	if p.SellingPrice, err = s.prompt.ReadDecimal("Selling price"); err != nil {
		return p, err
	}
	if p.Units, err = s.prompt.ReadInt("Units"); err != nil {
		return p, err
	}
	if p.SecurityStock, err = s.prompt.ReadInt("Security stock"); err != nil {
		return p, err
	}
	if p.MaxStock, err = s.prompt.ReadInt("Max stock"); err != nil {
		return p, err
	}
	return p, nil
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrArticleNotFound):
		return "ERROR: That code does not match any article."
	case errors.Is(err, models.ErrDuplicateArticle):
		return "ERROR: An article with that name and brand already exists in the warehouse."
	case errors.Is(err, models.ErrInsufficientStock):
		return "ERROR: Not enough units in the warehouse."
	case errors.Is(err, models.ErrPersistence):
		return "ERROR: The warehouse file operation failed: " + err.Error()
	default:
		return "ERROR: " + err.Error()
	}
}
