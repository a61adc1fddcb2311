package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/mocks"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/service"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/template"
)

func TestTemplateService_GenerateScoreTemplate(t *testing.T) {
	ctx := context.Background()

	request := service.ScoreTemplateRequest{
		ClassID:   "class-1a",
		SubjectID: "subject-math",
		TermID:    "term-1",
		Assessments: []domain.AssessmentSpec{
			{Name: "CA1", MaxScore: 20},
			{Name: "Exam", MaxScore: 60},
		},
	}

	t.Run("embeds the scope and lists the class", func(t *testing.T) {
		students := mocks.NewMockStudentRepository(t)
		resolver := mocks.NewMockResolverRepository(t)
		svc := service.NewTemplateService(students, resolver, nil)

		resolver.EXPECT().GetClass(mock.Anything, testTenant, "class-1a").
			Return(&domain.Class{ID: "class-1a", TenantID: testTenant, Name: "JSS 1A"}, nil)
		resolver.EXPECT().GetSubject(mock.Anything, testTenant, "subject-math").
			Return(&domain.Subject{ID: "subject-math", Name: "Mathematics"}, nil)
		resolver.EXPECT().GetTerm(mock.Anything, testTenant, "term-1").
			Return(&domain.Term{ID: "term-1", Name: "First Term"}, nil)
		students.EXPECT().ListByClass(mock.Anything, testTenant, "class-1a").
			Return([]domain.Student{
				{ID: "stu-1", FirstName: "Ada", LastName: "Obi"},
				{ID: "stu-2", FirstName: "Tunde", LastName: "Bello"},
			}, nil)

		buf, err := svc.GenerateScoreTemplate(ctx, testTenant, "teacher-1", request)
		require.NoError(t, err)

		sheet, err := template.ReadScoreSheet(buf.Bytes(), testTenant)
		require.NoError(t, err)
		assert.Equal(t, "class-1a", sheet.Meta.ClassID)
		assert.Equal(t, "teacher-1", sheet.Meta.GeneratedBy)
		assert.Len(t, sheet.Meta.Assessments, 2)
		require.Len(t, sheet.Table.Rows, 2)
		assert.Equal(t, "stu-1", sheet.Table.Rows[0].Cell(0))
	})

	t.Run("rejects an invalid schema", func(t *testing.T) {
		svc := service.NewTemplateService(mocks.NewMockStudentRepository(t), mocks.NewMockResolverRepository(t), nil)

		bad := request
		bad.Assessments = []domain.AssessmentSpec{{Name: "CA1", MaxScore: 20}, {Name: "CA1", MaxScore: 10}}
		_, err := svc.GenerateScoreTemplate(ctx, testTenant, "teacher-1", bad)

		var subErr *domain.SubmissionError
		require.True(t, errors.As(err, &subErr))
		assert.Equal(t, domain.CodeInvalidOptions, subErr.Code)
		assert.Equal(t, "assessments", subErr.Issues[0].Field)
	})

	t.Run("unknown class", func(t *testing.T) {
		resolver := mocks.NewMockResolverRepository(t)
		svc := service.NewTemplateService(mocks.NewMockStudentRepository(t), resolver, nil)
		resolver.EXPECT().GetClass(mock.Anything, testTenant, "class-1a").Return(nil, nil)

		_, err := svc.GenerateScoreTemplate(ctx, testTenant, "teacher-1", request)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTemplateService_GenerateStudentTemplate(t *testing.T) {
	svc := service.NewTemplateService(mocks.NewMockStudentRepository(t), mocks.NewMockResolverRepository(t), nil)

	buf, err := svc.GenerateStudentTemplate(context.Background())
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}
