package core

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/models"
)

// Messages returned by UpdateSettings.
const (
	SettingsSaved          = "success"
	NickNameTooLongMessage = "ニックネームは10文字以内で入力してください"
	SettingsFailedMessage  = "設定の保存に失敗しました"
)

type settingsService struct {
	users    db.UserRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(users db.UserRepository, logger *zap.Logger) SettingsService {
	return &settingsService{users: users, validate: validator.New(), logger: logger}
}

func (s *settingsService) FetchSettings(ctx context.Context, uid string) (*models.Settings, error) {
	user, err := getUser(ctx, s.users, uid)
	if err != nil {
		return nil, err
	}
	return &user.Settings, nil
}

// UpdateSettings merges the form into the caller's settings. The nickname
// is limited to 10 characters.
func (s *settingsService) UpdateSettings(ctx context.Context, uid string, form models.SettingsForm) (string, error) {
	if uid == "" {
		return "", ErrUnauthenticated
	}
	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NickNameTooLongMessage, &ValidationError{Message: NickNameTooLongMessage}
		}
		return SettingsFailedMessage, err
	}

	timeTable := models.TimeTable{}
	if form.TimeTable != "" {
		if err := json.Unmarshal([]byte(form.TimeTable), &timeTable); err != nil {
			return SettingsFailedMessage, &ValidationError{Message: SettingsFailedMessage}
		}
	}

	settings := models.Settings{
		NickName:             form.NickName,
		ModeOfTransportation: form.ModeOfTransportation,
		TimeTable:            timeTable,
		Notification:         form.Notification == "true",
	}
	if err := s.users.MergeSettings(ctx, uid, settings); err != nil {
		s.logger.Error("Failed to save settings", zap.String("uid", uid), zap.Error(err))
		return SettingsFailedMessage, err
	}
	return SettingsSaved, nil
}
