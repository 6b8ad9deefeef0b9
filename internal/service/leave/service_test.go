package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retouchhive/office-backend/internal/domain/leave"
	"github.com/retouchhive/office-backend/internal/pkg/validator"
)

type stubLeaveRepository struct {
	leave.Repository
	setEmail   string
	setBalance int
	setCalls   int
}

func (s *stubLeaveRepository) SetBalance(_ context.Context, email string, casualLeave int) error {
	s.setEmail = email
	s.setBalance = casualLeave
	s.setCalls++
	return nil
}

func TestSetBalanceRejectsNegative(t *testing.T) {
	repo := &stubLeaveRepository{}
	svc := &LeaveServiceImpl{leaveRepository: repo}

	err := svc.SetBalance(context.Background(), "worker@retouchhive.com", -1)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "casual_leave", verrs[0].Field)

	assert.Zero(t, repo.setCalls)
}

func TestSetBalanceStoresValue(t *testing.T) {
	repo := &stubLeaveRepository{}
	svc := &LeaveServiceImpl{leaveRepository: repo}

	err := svc.SetBalance(context.Background(), "worker@retouchhive.com", 12)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.setCalls)
	assert.Equal(t, "worker@retouchhive.com", repo.setEmail)
	assert.Equal(t, 12, repo.setBalance)
}
