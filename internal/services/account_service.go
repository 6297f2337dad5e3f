package services

import (
	"context"
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"elimu/internal/models/db_models"
	"elimu/internal/models/request_models"
	"elimu/internal/models/response_models"
	"elimu/internal/repositories"
	"elimu/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	ApplyAsInstructor(ctx context.Context, accountID string, request request_models.InstructorApplyRequest) error
	ApproveInstructor(ctx context.Context, accountID string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	subRepo     repositories.SubscriptionRepository
}

func NewAccountService(accountRepo repositories.AccountRepository, subRepo repositories.SubscriptionRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		subRepo:     subRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleStudent,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AccountResponse{
		ID:                 newAccount.ID.String(),
		Name:               newAccount.Name,
		Email:              newAccount.Email,
		Role:               string(newAccount.Role),
		InstructorApproved: newAccount.InstructorApproved,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	activeSub, err := a.subRepo.FindActiveForAccount(ctx, account.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AccountLoginResponse{
		Token:                 token,
		HasActiveSubscription: activeSub != nil,
	}, nil
}

func (a *AccountService) ApplyAsInstructor(ctx context.Context, accountID string, request request_models.InstructorApplyRequest) error {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	links := request.Links
	if links == nil {
		links = map[string]string{}
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.SaveInstructorApplication(ctx, accountID, request.Bio, datatypes.JSON(raw)); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) ApproveInstructor(ctx context.Context, accountID string) error {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := a.accountRepo.ApproveInstructor(ctx, accountID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
