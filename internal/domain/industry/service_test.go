package industry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biztime/internal/core/apperror"
	"biztime/internal/core/tx"
)

type mockRepo struct {
	listWithCompaniesFn func(ctx context.Context) ([]AggRow, error)
	createFn            func(ctx context.Context, ind Industry) error
	existsFn            func(ctx context.Context, code string) (bool, error)
	companyExistsFn     func(ctx context.Context, code string) (bool, error)
	associateFn         func(ctx context.Context, companyCode, industryCode string) error
}

func (m *mockRepo) ListWithCompanies(ctx context.Context) ([]AggRow, error) {
	return m.listWithCompaniesFn(ctx)
}
func (m *mockRepo) Create(ctx context.Context, ind Industry) error { return m.createFn(ctx, ind) }
func (m *mockRepo) Exists(ctx context.Context, code string) (bool, error) {
	return m.existsFn(ctx, code)
}
func (m *mockRepo) CompanyExists(ctx context.Context, code string) (bool, error) {
	return m.companyExistsFn(ctx, code)
}
func (m *mockRepo) Associate(ctx context.Context, companyCode, industryCode string) error {
	return m.associateFn(ctx, companyCode, industryCode)
}

func strPtr(s string) *string { return &s }

func TestFilterCompanyCodes(t *testing.T) {
	tests := []struct {
		name  string
		codes []*string
		want  []string
	}{
		{"nil slice", nil, []string{}},
		{"single null placeholder", []*string{nil}, []string{}},
		{"codes preserved in order", []*string{strPtr("acme"), strPtr("ibm")}, []string{"acme", "ibm"}},
		{"nulls interleaved", []*string{nil, strPtr("acme"), nil}, []string{"acme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCompanyCodes(tt.codes)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceList_MapsAggRows(t *testing.T) {
	repo := &mockRepo{
		listWithCompaniesFn: func(_ context.Context) ([]AggRow, error) {
			return []AggRow{
				{Code: "tech", Name: "Technology", CompanyCodes: []*string{strPtr("acme"), strPtr("ibm")}},
				{Code: "retail", Name: "Retail", CompanyCodes: []*string{nil}},
			}, nil
		},
	}
	s := NewService(repo, tx.Nop{})

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"acme", "ibm"}, got[0].Companies)
	assert.Equal(t, []string{}, got[1].Companies)
}

func TestServiceCreate(t *testing.T) {
	t.Run("derives code from name", func(t *testing.T) {
		var inserted Industry
		repo := &mockRepo{
			createFn: func(_ context.Context, ind Industry) error {
				inserted = ind
				return nil
			},
		}
		s := NewService(repo, tx.Nop{})

		got, err := s.Create(context.Background(), "Venture Capital")
		require.NoError(t, err)
		assert.Equal(t, "venture-capital", got.Code)
		assert.Equal(t, "Venture Capital", got.Name)
		assert.Equal(t, *got, inserted)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		s := NewService(&mockRepo{}, tx.Nop{})

		_, err := s.Create(context.Background(), "")
		require.Error(t, err)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Equal(t, "Industry name is required", appErr.Message)
	})
}

func TestServiceAssociate(t *testing.T) {
	existing := func(want string) func(context.Context, string) (bool, error) {
		return func(_ context.Context, code string) (bool, error) {
			return code == want, nil
		}
	}

	t.Run("links and confirms", func(t *testing.T) {
		var gotCompany, gotIndustry string
		repo := &mockRepo{
			existsFn:        existing("tech"),
			companyExistsFn: existing("acme"),
			associateFn: func(_ context.Context, companyCode, industryCode string) error {
				gotCompany, gotIndustry = companyCode, industryCode
				return nil
			},
		}
		s := NewService(repo, tx.Nop{})

		msg, err := s.Associate(context.Background(), "tech", "acme")
		require.NoError(t, err)
		assert.Equal(t, "Company 'acme' associated with industry 'tech'", msg)
		assert.Equal(t, "acme", gotCompany)
		assert.Equal(t, "tech", gotIndustry)
	})

	t.Run("duplicate pair absorbed", func(t *testing.T) {
		calls := 0
		repo := &mockRepo{
			existsFn:        existing("tech"),
			companyExistsFn: existing("acme"),
			associateFn: func(_ context.Context, _, _ string) error {
				calls++
				return nil
			},
		}
		s := NewService(repo, tx.Nop{})

		for i := 0; i < 2; i++ {
			msg, err := s.Associate(context.Background(), "tech", "acme")
			require.NoError(t, err)
			assert.Equal(t, "Company 'acme' associated with industry 'tech'", msg)
		}
		assert.Equal(t, 2, calls)
	})

	t.Run("missing company_code rejected", func(t *testing.T) {
		s := NewService(&mockRepo{}, tx.Nop{})

		_, err := s.Associate(context.Background(), "tech", "")
		require.Error(t, err)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Equal(t, "'company_code' is required", appErr.Message)
	})

	t.Run("unknown industry", func(t *testing.T) {
		repo := &mockRepo{existsFn: existing("tech")}
		s := NewService(repo, tx.Nop{})

		_, err := s.Associate(context.Background(), "ghost", "acme")
		require.Error(t, err)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
		assert.Equal(t, "Industry with code 'ghost' not found", appErr.Message)
	})

	t.Run("unknown company", func(t *testing.T) {
		repo := &mockRepo{
			existsFn:        existing("tech"),
			companyExistsFn: existing("acme"),
		}
		s := NewService(repo, tx.Nop{})

		_, err := s.Associate(context.Background(), "tech", "ghost")
		require.Error(t, err)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
		assert.Equal(t, "Company with code 'ghost' not found", appErr.Message)
	})
}
