package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/fernet/fernet-go"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
	"github.com/nicoegiaian/finanzas-hogar-backend/internal/repository"
)

// SettingMarketAPIKey is the setting row holding the market data API key.
const SettingMarketAPIKey = "market_api_key"

// SettingsService stores operator-managed settings. Secret values are
// encrypted at rest with a Fernet key from the environment; when no key is
// configured, values are stored as-is and a warning is logged once per write.
type SettingsService struct {
	settingRepo *repository.SettingRepository
	keys        []*fernet.Key
}

// NewSettingsService creates a new SettingsService. encodedKey is the
// base64-encoded Fernet key, or empty to disable encryption.
func NewSettingsService(settingRepo *repository.SettingRepository, encodedKey string) (*SettingsService, error) {
	s := &SettingsService{settingRepo: settingRepo}
	if encodedKey != "" {
		keys, err := fernet.DecodeKeys(encodedKey)
		if err != nil {
			return nil, fmt.Errorf("invalid settings encryption key: %w", err)
		}
		s.keys = keys
	}
	return s, nil
}

// SetMarketAPIKey stores the market data API key, encrypted when a Fernet
// key is configured.
func (s *SettingsService) SetMarketAPIKey(value string) error {
	stored := value
	if len(s.keys) > 0 {
		token, err := fernet.EncryptAndSign([]byte(value), s.keys[0])
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreSetting, err)
		}
		stored = string(token)
	} else {
		log.Printf("warning: SETTINGS_FERNET_KEY not set, storing %s unencrypted", SettingMarketAPIKey)
	}
	if err := s.settingRepo.SetSetting(SettingMarketAPIKey, stored); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreSetting, err)
	}
	return nil
}

// MarketAPIKey returns the stored market data API key, decrypted when
// encryption is configured. A missing row returns ("", nil) so callers can
// fall back to the environment.
func (s *SettingsService) MarketAPIKey() (string, error) {
	stored, err := s.settingRepo.GetSetting(SettingMarketAPIKey)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if len(s.keys) == 0 {
		return stored, nil
	}
	plain := fernet.VerifyAndDecrypt([]byte(stored), 0, s.keys)
	if plain == nil {
		// A row written before encryption was enabled is still usable.
		return stored, nil
	}
	return string(plain), nil
}

// HasMarketAPIKey reports whether a non-empty key is stored.
func (s *SettingsService) HasMarketAPIKey() (bool, error) {
	key, err := s.MarketAPIKey()
	if err != nil {
		return false, err
	}
	return key != "", nil
}
