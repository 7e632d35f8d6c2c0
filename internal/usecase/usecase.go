package usecase

import (
	"time"

	"github.com/avc-dev/urlshort/internal/config"
	"github.com/avc-dev/urlshort/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name URLRepository
//go:generate mockery --name URLService
//go:generate mockery --name Opener

// URLRepository определяет интерфейс для работы с хранилищем ссылок
type URLRepository interface {
	FindByCode(code model.Code) (model.Link, error)
	Exists(code model.Code) (bool, error)
	Save(link model.Link) error
	Delete(code model.Code) (bool, error)
	List() ([]model.Link, error)
}

// URLService определяет интерфейс генерации уникальных коротких кодов
type URLService interface {
	GenerateUniqueCode(length int) (model.Code, error)
}

// Opener открывает URL во внешней программе
type Opener interface {
	Open(url model.URL) error
}

// URLUsecase содержит бизнес-логику команд утилиты
type URLUsecase struct {
	repo    URLRepository
	service URLService
	opener  Opener
	cfg     *config.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo URLRepository, service URLService, opener Opener, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:    repo,
		service: service,
		opener:  opener,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}
