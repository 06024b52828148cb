package payment

import (
	"fmt"
	"sportmaps/entity"
	"strings"
	"time"
)

// Sandbox identifiers follow a naming convention: demo_ prefixed ids
// and addresses on the demo domain never touch stored state.
func isDemoStudent(studentID string) bool {
	return strings.HasPrefix(studentID, "demo_") || strings.Contains(studentID, "@demo.sportmaps.com")
}

func isDemoSchool(schoolID string) bool {
	return schoolID == demoSchoolID || strings.HasPrefix(schoolID, "demo_")
}

type demoProgram struct {
	id     string
	name   string
	amount int64
}

var demoPrograms = []demoProgram{
	{id: "prog_1", name: "Fútbol Juvenil", amount: 220000},
	{id: "prog_2", name: "Natación Infantil", amount: 180000},
}

var demoMethods = []string{"pse", "card", "nequi"}

// demoTransactions fabricates a six-month history: five approved
// charges and one pending, one month apart.
func (s *Service) demoTransactions(studentID string) []entity.Transaction {
	now := time.Now().UTC()
	transactions := make([]entity.Transaction, 0, 6)
	for i := 0; i < 6; i++ {
		prog := demoPrograms[s.rng.Intn(len(demoPrograms))]
		status := entity.PaymentApproved
		if i >= 5 {
			status = entity.PaymentPending
		}

		txn := entity.Transaction{
			ID:              fmt.Sprintf("txn_%d", i+1),
			PaymentIntentID: fmt.Sprintf("pi_%d", i+1),
			StudentID:       studentID,
			SchoolID:        demoSchoolID,
			ProgramID:       prog.id,
			Amount:          prog.amount,
			PaymentMethod:   demoMethods[s.rng.Intn(len(demoMethods))],
			Status:          status,
			Reference:       s.reference(),
			TransactionDate: now.AddDate(0, 0, -30*i),
			Metadata:        map[string]string{"program_name": prog.name},
		}
		if status == entity.PaymentApproved {
			txn.AuthorizationCode = s.authCode()
		}
		transactions = append(transactions, txn)
	}
	return transactions
}

func (s *Service) demoSubscription(studentID string) entity.Subscription {
	now := time.Now().UTC()
	lastCharge := now.AddDate(0, 0, -15)
	return entity.Subscription{
		ID:             "sub_demo_1",
		StudentID:      studentID,
		ProgramID:      "prog_1",
		SchoolID:       demoSchoolID,
		Amount:         220000,
		PaymentMethod:  "card",
		Status:         entity.SubscriptionActive,
		NextChargeDate: now.AddDate(0, 0, 15),
		LastChargeDate: &lastCharge,
		CreatedAt:      lastCharge,
		CardLast4:      "1234",
	}
}

var demoStudentNames = []string{"Santiago García", "Emma García", "Sofía Ramírez", "Mateo Torres"}

// demoSchoolTransactions fabricates a twelve-entry school ledger:
// eleven approved, one pending, two days apart.
func (s *Service) demoSchoolTransactions(schoolID string) *entity.SchoolTransactions {
	now := time.Now().UTC()
	transactions := make([]entity.Transaction, 0, 12)
	var totalAmount int64
	for i := 0; i < 12; i++ {
		prog := demoPrograms[s.rng.Intn(len(demoPrograms))]
		status := entity.PaymentApproved
		if i >= 11 {
			status = entity.PaymentPending
		}

		txn := entity.Transaction{
			ID:              fmt.Sprintf("txn_%d", i+1),
			SchoolID:        schoolID,
			ProgramID:       prog.id,
			Amount:          prog.amount,
			PaymentMethod:   demoMethods[s.rng.Intn(len(demoMethods))],
			Status:          status,
			Reference:       s.reference(),
			TransactionDate: now.AddDate(0, 0, -2*i),
			Metadata: map[string]string{
				"student_name": demoStudentNames[s.rng.Intn(len(demoStudentNames))],
				"program_name": prog.name,
			},
		}
		if status == entity.PaymentApproved {
			txn.AuthorizationCode = s.authCode()
			totalAmount += txn.Amount
		}
		transactions = append(transactions, txn)
	}

	return &entity.SchoolTransactions{
		Transactions: transactions,
		TotalAmount:  totalAmount,
		SuccessRate:  0.985,
	}
}
