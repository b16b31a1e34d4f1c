package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrChatNotLinked      = errors.New("chat is not linked for this phone number")
	ErrCodeNotFound       = errors.New("code not found")
	ErrInvalidCode        = errors.New("invalid code")
	ErrCodeDeliveryFailed = errors.New("code delivery failed")
)

const (
	codeDigits  = 6
	codeMessage = "Ваш код подтверждения: %s"
)

// CodeGenerator returns a fresh one-time code.
type CodeGenerator func() (string, error)

// RandomCode returns a uniformly distributed 6-digit code from crypto/rand.
func RandomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}

// IOTPUseCase links phone numbers to chats and authenticates users with
// one-time codes delivered to those chats.
//
// Lookups search workers first, then admins. An empty role searches both.
type IOTPUseCase interface {
	FindUserByPhone(ctx context.Context, phone string, role entities.Role) (entities.UserRecord, error)
	SendCode(ctx context.Context, phone string, role entities.Role) error
	VerifyCode(ctx context.Context, phone string, role entities.Role, code string) (string, error)
	LinkChatIdentity(ctx context.Context, phone string, chatID int64) (entities.UserRecord, error)
}

type OTPUseCase struct {
	workers  interfaces.IWorkerRepository
	admins   interfaces.IAdminRepository
	codes    interfaces.ICodeStore
	notifier interfaces.IChatNotifier
	tokens   interfaces.ITokenIssuer
	generate CodeGenerator
}

var _ IOTPUseCase = (*OTPUseCase)(nil)

func NewOTPUseCase(
	workers interfaces.IWorkerRepository,
	admins interfaces.IAdminRepository,
	codes interfaces.ICodeStore,
	notifier interfaces.IChatNotifier,
	tokens interfaces.ITokenIssuer,
	generate CodeGenerator,
) *OTPUseCase {
	if generate == nil {
		generate = RandomCode
	}
	return &OTPUseCase{
		workers:  workers,
		admins:   admins,
		codes:    codes,
		notifier: notifier,
		tokens:   tokens,
		generate: generate,
	}
}

func (u *OTPUseCase) FindUserByPhone(ctx context.Context, phone string, role entities.Role) (entities.UserRecord, error) {
	phone = entities.NormalizePhone(phone)
	if !entities.ValidPhone(phone) {
		return entities.UserRecord{}, ErrInvalidPhone
	}
	if role != entities.RoleNone && role != entities.RoleWorker && role != entities.RoleAdmin {
		return entities.UserRecord{}, ErrInvalidRole
	}

	if role == entities.RoleNone || role == entities.RoleWorker {
		w, err := u.workers.GetByPhone(ctx, phone)
		if err != nil {
			return entities.UserRecord{}, err
		}
		if w.ID != "" {
			return entities.UserRecord{ID: w.ID, PhoneNumber: w.PhoneNumber, Role: entities.RoleWorker, ChatID: w.ChatID}, nil
		}
	}
	if role == entities.RoleNone || role == entities.RoleAdmin {
		a, err := u.admins.GetByPhone(ctx, phone)
		if err != nil {
			return entities.UserRecord{}, err
		}
		if a.ID != "" {
			return entities.UserRecord{ID: a.ID, PhoneNumber: a.PhoneNumber, Role: entities.RoleAdmin, ChatID: a.ChatID}, nil
		}
	}
	return entities.UserRecord{}, ErrUserNotFound
}

// SendCode issues a code for the user and delivers it to the linked chat. A
// new code replaces any pending one for the same phone and role.
func (u *OTPUseCase) SendCode(ctx context.Context, phone string, role entities.Role) error {
	user, err := u.FindUserByPhone(ctx, phone, role)
	if err != nil {
		return err
	}
	if !user.HasChat() {
		log.Infof("[otp][usecase] chat not linked user_id=%s role=%s", user.ID, user.Role)
		return ErrChatNotLinked
	}

	code, err := u.generate()
	if err != nil {
		return err
	}
	key := interfaces.CodeKey{Phone: user.PhoneNumber, Role: user.Role}
	u.codes.Put(key, code)

	if err := u.notifier.SendMessage(ctx, *user.ChatID, fmt.Sprintf(codeMessage, code)); err != nil {
		u.codes.Delete(key)
		log.Errorf("[otp][usecase] delivery failed user_id=%s err=%v", user.ID, err)
		return fmt.Errorf("%w: %v", ErrCodeDeliveryFailed, err)
	}
	log.Infof("[otp][usecase] code sent user_id=%s role=%s", user.ID, user.Role)
	return nil
}

// VerifyCode checks the pending code. A mismatch keeps the code; a match
// consumes it and returns a signed credential carrying the user's role.
func (u *OTPUseCase) VerifyCode(ctx context.Context, phone string, role entities.Role, code string) (string, error) {
	user, err := u.FindUserByPhone(ctx, phone, role)
	if err != nil {
		return "", err
	}

	key := interfaces.CodeKey{Phone: user.PhoneNumber, Role: user.Role}
	found, matched := u.codes.ConsumeIfMatch(key, code)
	if !found {
		return "", ErrCodeNotFound
	}
	if !matched {
		log.Infof("[otp][usecase] code mismatch user_id=%s", user.ID)
		return "", ErrInvalidCode
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", err
	}
	log.Infof("[otp][usecase] code verified user_id=%s role=%s", user.ID, user.Role)
	return token, nil
}

// LinkChatIdentity stores chatID on the worker or admin owning phone.
func (u *OTPUseCase) LinkChatIdentity(ctx context.Context, phone string, chatID int64) (entities.UserRecord, error) {
	user, err := u.FindUserByPhone(ctx, phone, entities.RoleNone)
	if err != nil {
		return entities.UserRecord{}, err
	}

	switch user.Role {
	case entities.RoleWorker:
		err = u.workers.SetChatID(ctx, user.ID, chatID)
	case entities.RoleAdmin:
		err = u.admins.SetChatID(ctx, user.ID, chatID)
	}
	if err != nil {
		return entities.UserRecord{}, err
	}

	user.ChatID = &chatID
	log.Infof("[otp][usecase] chat linked user_id=%s role=%s", user.ID, user.Role)
	return user, nil
}
