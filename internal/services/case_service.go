package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/metrics"
	"recovery-backend/internal/models"
	"recovery-backend/internal/repositories"
)

var accountNumberPattern = regexp.MustCompile(`^\d{9,18}$`)

// CaseStore is the slice of the case repository the service needs.
type CaseStore interface {
	Create(ctx context.Context, cs *models.Case) error
	Get(ctx context.Context, id int) (*models.Case, error)
	List(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error)
	Update(ctx context.Context, cs *models.Case) error
	Delete(ctx context.Context, id int) error
	Assign(ctx context.Context, caseID, agentID int, amount float64, note, addedBy string) error
	Complete(ctx context.Context, caseID, cibilBefore, cibilAfter int, note, addedBy string) error
	AddNote(ctx context.Context, note *models.CaseNote) error
	ListNotes(ctx context.Context, caseID int) ([]models.CaseNote, error)
	SetDocument(ctx context.Context, caseID int, field, filename string) error
}

// AgentLookup resolves the agent a case is being assigned to.
type AgentLookup interface {
	Get(ctx context.Context, id int) (*models.User, error)
}

type CaseService struct {
	Repo  CaseStore
	Users AgentLookup
}

func NewCaseService(repo CaseStore, users AgentLookup) *CaseService {
	return &CaseService{Repo: repo, Users: users}
}

func validateCaseFields(name, phone, accountNumber string, cibil int) error {
	if name == "" {
		return errors.New("name is required")
	}
	if !phonePattern.MatchString(phone) {
		return errors.New("phone must be 10 digits")
	}
	if accountNumber != "" && !accountNumberPattern.MatchString(accountNumber) {
		return errors.New("account number must be 9-18 digits")
	}
	if cibil != 0 && (cibil < 300 || cibil > 900) {
		return errors.New("cibil must be between 300 and 900")
	}
	return nil
}

func (s *CaseService) Create(ctx context.Context, req *models.CreateCaseRequest) (*models.Case, error) {
	if err := validateCaseFields(req.Name, req.Phone, req.AccountNumber, req.Cibil); err != nil {
		return nil, err
	}

	bank := req.Bank
	if bank == "Other" && req.OtherBank != "" {
		bank = req.OtherBank
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	cs := &models.Case{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Aadhaar:        req.Aadhaar,
		Pan:            req.Pan,
		Cibil:          req.Cibil,
		Address:        req.Address,
		Problem:        req.Problem,
		Bank:           bank,
		OtherBank:      req.OtherBank,
		LoanType:       req.LoanType,
		AccountNumber:  req.AccountNumber,
		Issues:         req.Issues,
		PageNumber:     req.PageNumber,
		ReferredPerson: req.ReferredPerson,
		TelecallerID:   req.TelecallerID,
		TelecallerName: req.TelecallerName,
		Priority:       priority,
	}
	if err := s.Repo.Create(ctx, cs); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, errors.New("case number already exists")
		}
		return nil, storeErr(err)
	}

	metrics.CasesCreatedTotal.Inc()
	cache.InvalidateStats(ctx)
	log.Printf("[Cases] Created %s for %s", cs.CaseNumber, cs.Name)
	return cs, nil
}

func (s *CaseService) Get(ctx context.Context, id int) (*models.Case, error) {
	cs, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return cs, nil
}

func (s *CaseService) List(ctx context.Context, filter models.CaseFilter) ([]*models.Case, error) {
	if filter.Status != "" && !models.ValidCaseStatus(filter.Status) {
		return nil, errors.New("invalid status filter")
	}
	cases, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, storeErr(err)
	}
	return cases, nil
}

func (s *CaseService) Update(ctx context.Context, id int, req *models.UpdateCaseRequest) (*models.Case, error) {
	cs, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	if req.Name != nil {
		cs.Name = *req.Name
	}
	if req.Phone != nil {
		cs.Phone = *req.Phone
	}
	if req.Email != nil {
		cs.Email = *req.Email
	}
	if req.Aadhaar != nil {
		cs.Aadhaar = *req.Aadhaar
	}
	if req.Pan != nil {
		cs.Pan = *req.Pan
	}
	if req.Cibil != nil {
		cs.Cibil = *req.Cibil
	}
	if req.Address != nil {
		cs.Address = *req.Address
	}
	if req.Problem != nil {
		cs.Problem = *req.Problem
	}
	if req.OtherBank != nil {
		cs.OtherBank = *req.OtherBank
	}
	if req.Bank != nil {
		cs.Bank = *req.Bank
		if cs.Bank == "Other" && cs.OtherBank != "" {
			cs.Bank = cs.OtherBank
		}
	}
	if req.LoanType != nil {
		cs.LoanType = *req.LoanType
	}
	if req.AccountNumber != nil {
		cs.AccountNumber = *req.AccountNumber
	}
	if req.Issues != nil {
		cs.Issues = req.Issues
	}
	if req.PageNumber != nil {
		cs.PageNumber = *req.PageNumber
	}
	if req.ReferredPerson != nil {
		cs.ReferredPerson = *req.ReferredPerson
	}
	if req.Amount != nil {
		cs.Amount = *req.Amount
	}
	if req.Priority != nil {
		cs.Priority = *req.Priority
	}
	if req.Status != nil {
		next, err := cs.Status.TransitionTo(*req.Status)
		if err != nil {
			return nil, err
		}
		cs.Status = next
	}

	if err := validateCaseFields(cs.Name, cs.Phone, cs.AccountNumber, cs.Cibil); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, cs); err != nil {
		return nil, storeErr(err)
	}
	cache.InvalidateStats(ctx)
	return cs, nil
}

func (s *CaseService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	cache.InvalidateStats(ctx)
	log.Printf("[Cases] Deleted case %d", id)
	return nil
}

// Assign hands a Pending case to an agent. The repository performs the
// case update and the agent workload bump in one transaction.
func (s *CaseService) Assign(ctx context.Context, caseID int, req *models.AssignCaseRequest, assignedBy string) (*models.Case, error) {
	cs, err := s.Repo.Get(ctx, caseID)
	if err != nil {
		return nil, storeErr(err)
	}
	if cs.Status == models.StatusInProgress {
		return nil, fmt.Errorf("case %s is already assigned", cs.CaseNumber)
	}
	if !cs.Status.CanTransitionTo(models.StatusInProgress) {
		return nil, fmt.Errorf("cannot assign a case that is %s", cs.Status)
	}
	if req.Amount < 0 {
		return nil, errors.New("amount cannot be negative")
	}

	agent, err := s.Users.Get(ctx, req.AgentID)
	if err != nil {
		return nil, errors.New("agent not found")
	}
	if agent.Role != models.RoleAgent {
		return nil, errors.New("user is not an agent")
	}

	note := fmt.Sprintf("Assigned to %s %s", agent.FirstName, agent.LastName)
	if err := s.Repo.Assign(ctx, caseID, agent.ID, req.Amount, note, assignedBy); err != nil {
		return nil, storeErr(err)
	}

	metrics.CasesAssignedTotal.Inc()
	cache.InvalidateStats(ctx)
	log.Printf("[Cases] %s assigned to agent %d", cs.CaseNumber, agent.ID)
	updated, err := s.Repo.Get(ctx, caseID)
	if err != nil {
		return nil, storeErr(err)
	}
	return updated, nil
}

// Complete resolves an In Progress case, recording both CIBIL scores.
func (s *CaseService) Complete(ctx context.Context, caseID int, req *models.CompleteCaseRequest, completedBy string) (*models.Case, error) {
	cs, err := s.Repo.Get(ctx, caseID)
	if err != nil {
		return nil, storeErr(err)
	}
	if cs.Status == models.StatusSolved {
		return nil, fmt.Errorf("case %s is already solved", cs.CaseNumber)
	}
	if !cs.Status.CanTransitionTo(models.StatusSolved) {
		return nil, fmt.Errorf("cannot complete a case that is %s", cs.Status)
	}
	if req.CibilBefore < 300 || req.CibilBefore > 900 || req.CibilAfter < 300 || req.CibilAfter > 900 {
		return nil, errors.New("cibilBefore and cibilAfter must be between 300 and 900")
	}

	note := fmt.Sprintf("Case resolved, CIBIL %d -> %d", req.CibilBefore, req.CibilAfter)
	if err := s.Repo.Complete(ctx, caseID, req.CibilBefore, req.CibilAfter, note, completedBy); err != nil {
		return nil, storeErr(err)
	}

	metrics.CasesSolvedTotal.Inc()
	cache.InvalidateStats(ctx)
	log.Printf("[Cases] %s solved", cs.CaseNumber)
	updated, err := s.Repo.Get(ctx, caseID)
	if err != nil {
		return nil, storeErr(err)
	}
	return updated, nil
}

func (s *CaseService) AddNote(ctx context.Context, caseID int, content, addedBy string) (*models.CaseNote, error) {
	if content == "" {
		return nil, errors.New("note content is required")
	}
	if _, err := s.Repo.Get(ctx, caseID); err != nil {
		return nil, storeErr(err)
	}

	note := &models.CaseNote{CaseID: caseID, Content: content, AddedBy: addedBy}
	if err := s.Repo.AddNote(ctx, note); err != nil {
		return nil, storeErr(err)
	}
	return note, nil
}

func (s *CaseService) ListNotes(ctx context.Context, caseID int) ([]models.CaseNote, error) {
	if _, err := s.Repo.Get(ctx, caseID); err != nil {
		return nil, storeErr(err)
	}
	notes, err := s.Repo.ListNotes(ctx, caseID)
	if err != nil {
		return nil, storeErr(err)
	}
	return notes, nil
}

// AttachDocument records an uploaded filename against the case.
func (s *CaseService) AttachDocument(ctx context.Context, caseID int, field, filename string) error {
	if _, err := s.Repo.Get(ctx, caseID); err != nil {
		return storeErr(err)
	}
	if err := s.Repo.SetDocument(ctx, caseID, field, filename); err != nil {
		return storeErr(err)
	}
	return nil
}
