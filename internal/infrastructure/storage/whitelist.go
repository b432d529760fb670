package storage

import (
	"fmt"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WhitelistStore белый список номеров, загружаемый из JSON-файла.
// Чтения идут параллельно, перезагрузка исключает их на время замены.
type WhitelistStore struct {
	mu     sync.RWMutex
	path   string
	plates map[string]struct{}
	log    zerolog.Logger
}

// NewWhitelistStore загружает белый список из файла
func NewWhitelistStore(path string, log zerolog.Logger) (*WhitelistStore, error) {
	store := &WhitelistStore{
		path:   path,
		plates: make(map[string]struct{}),
		log:    log,
	}
	if err := store.Reload(); err != nil {
		return nil, err
	}
	return store, nil
}

// Contains проверяет наличие нормализованного номера в списке
func (s *WhitelistStore) Contains(plate string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.plates[plate]
	return ok
}

// Size возвращает количество номеров в списке
func (s *WhitelistStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.plates)
}

// Reload перечитывает файл белого списка. Записи нормализуются так же,
// как текст из OCR, чтобы сравнение было точным.
func (s *WhitelistStore) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: cannot read whitelist %s: %v", entity.ErrConfiguration, s.path, err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: cannot parse whitelist %s: %v", entity.ErrConfiguration, s.path, err)
	}

	plates := make(map[string]struct{}, len(raw))
	for _, plate := range raw {
		plates[entity.NormalizePlate(plate)] = struct{}{}
	}

	s.mu.Lock()
	s.plates = plates
	s.mu.Unlock()

	s.log.Info().Int("plates", len(plates)).Str("path", s.path).Msg("whitelist loaded")

	return nil
}

// Проверка реализации интерфейса
var _ port.Whitelist = (*WhitelistStore)(nil)
