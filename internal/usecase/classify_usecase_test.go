package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Pravhesh/GrievAI/internal/domain/category"
	"github.com/Pravhesh/GrievAI/internal/domain/service"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/cache"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/executor"
)

// MockClassifier is a mock implementation of service.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, input string, candidateLabels []string) ([]service.LabelScore, error) {
	args := m.Called(ctx, input, candidateLabels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.LabelScore), args.Error(1)
}

// slowClassifier blocks for a fixed delay before answering.
type slowClassifier struct {
	delay time.Duration
	calls atomic.Int32
}

func (s *slowClassifier) Classify(context.Context, string, []string) ([]service.LabelScore, error) {
	s.calls.Add(1)
	time.Sleep(s.delay)
	return []service.LabelScore{{Label: "Road", Score: 0.9}}, nil
}

func newTestUsecase(t *testing.T, textClassifier, imageClassifier service.Classifier, timeout time.Duration) (ClassifyUsecase, *cache.MemoryStore) {
	t.Helper()
	store := cache.NewMemoryStore(64, time.Minute)
	uc := NewClassifyUsecase(
		textClassifier,
		imageClassifier,
		category.NewMapping(map[string]string{
			"Road":  "Road",
			"Water": "Water",
			"Spam":  "Spam",
		}, "Other"),
		store,
		executor.NewPool(2),
		timeout,
		zap.NewNop(),
	)
	return uc, store
}

func TestClassifyText_Validation(t *testing.T) {
	classifier := new(MockClassifier)
	uc, _ := newTestUsecase(t, classifier, nil, time.Second)

	t.Run("empty text", func(t *testing.T) {
		_, err := uc.ClassifyText(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("whitespace-only text", func(t *testing.T) {
		_, err := uc.ClassifyText(context.Background(), "   \t\n")
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	// The classifier must never have been reached.
	classifier.AssertNotCalled(t, "Classify")
}

func TestClassifyText_SuccessAndCache(t *testing.T) {
	classifier := new(MockClassifier)
	uc, _ := newTestUsecase(t, classifier, nil, time.Second)

	classifier.On("Classify", mock.Anything, "There is a huge pothole on main street.", []string{"Road", "Spam", "Water"}).
		Return([]service.LabelScore{
			{Label: "Road", Score: 0.9},
			{Label: "Water", Score: 0.05},
			{Label: "Spam", Score: 0.05},
		}, nil).Once()

	// First call: cache miss, classifier invoked.
	result1, err := uc.ClassifyText(context.Background(), "There is a huge pothole on main street.")
	require.NoError(t, err)
	assert.Equal(t, "Road", result1.Label)
	assert.Equal(t, 0.9, result1.Score)
	assert.Equal(t, "Road", result1.OriginalLabel)

	// Second identical call: cache hit, classifier NOT invoked again.
	result2, err := uc.ClassifyText(context.Background(), "There is a huge pothole on main street.")
	require.NoError(t, err)
	assert.Equal(t, result1, result2)

	// Same content modulo case and whitespace: still a hit.
	result3, err := uc.ClassifyText(context.Background(), "  THERE IS A HUGE POTHOLE ON MAIN STREET.  ")
	require.NoError(t, err)
	assert.Equal(t, result1, result3)

	classifier.AssertExpectations(t)
}

func TestClassifyText_DistinctTextsClassifiedIndependently(t *testing.T) {
	classifier := new(MockClassifier)
	uc, _ := newTestUsecase(t, classifier, nil, time.Second)

	classifier.On("Classify", mock.Anything, "There is a huge pothole on main street.", mock.Anything).
		Return([]service.LabelScore{{Label: "Road", Score: 0.9}}, nil).Once()
	classifier.On("Classify", mock.Anything, "The water is brown.", mock.Anything).
		Return([]service.LabelScore{{Label: "Water", Score: 0.8}}, nil).Once()

	r1, err := uc.ClassifyText(context.Background(), "There is a huge pothole on main street.")
	require.NoError(t, err)
	r2, err := uc.ClassifyText(context.Background(), "The water is brown.")
	require.NoError(t, err)

	assert.Equal(t, "Road", r1.Label)
	assert.Equal(t, "Water", r2.Label)
	classifier.AssertExpectations(t)
}

func TestClassifyText_ExpiryTriggersReinvocation(t *testing.T) {
	classifier := new(MockClassifier)
	store := cache.NewMemoryStore(64, 30*time.Millisecond)
	uc := NewClassifyUsecase(classifier, nil, category.NewDefaultMapping(), store, executor.NewPool(2), time.Second, zap.NewNop())

	classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return([]service.LabelScore{{Label: "Road", Score: 0.9}}, nil).Twice()

	_, err := uc.ClassifyText(context.Background(), "pothole")
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, err = uc.ClassifyText(context.Background(), "pothole")
	require.NoError(t, err)

	classifier.AssertExpectations(t)
}

func TestClassifyText_UnknownLabelNormalizesToOther(t *testing.T) {
	classifier := new(MockClassifier)
	uc, _ := newTestUsecase(t, classifier, nil, time.Second)

	classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return([]service.LabelScore{{Label: "mysterious category", Score: 0.6}}, nil).Once()

	result, err := uc.ClassifyText(context.Background(), "something odd")
	require.NoError(t, err)
	assert.Equal(t, "Other", result.Label)
	assert.Equal(t, "mysterious category", result.OriginalLabel)
}

func TestClassifyText_Timeout(t *testing.T) {
	slow := &slowClassifier{delay: 500 * time.Millisecond}
	uc, store := newTestUsecase(t, slow, nil, 30*time.Millisecond)

	_, err := uc.ClassifyText(context.Background(), "slow request")
	assert.ErrorIs(t, err, ErrClassificationTimeout)

	// No cache entry exists for the failed request at this point.
	key := cache.Key("slow request")
	_, ok, cacheErr := store.Get(context.Background(), key)
	require.NoError(t, cacheErr)
	assert.False(t, ok)
}

func TestClassifyText_LateCompletionFillsCache(t *testing.T) {
	slow := &slowClassifier{delay: 60 * time.Millisecond}
	uc, _ := newTestUsecase(t, slow, nil, 20*time.Millisecond)

	_, err := uc.ClassifyText(context.Background(), "slow request")
	require.ErrorIs(t, err, ErrClassificationTimeout)

	// Give the detached worker time to finish and warm the cache.
	time.Sleep(120 * time.Millisecond)

	result, err := uc.ClassifyText(context.Background(), "slow request")
	require.NoError(t, err)
	assert.Equal(t, "Road", result.Label)
	assert.Equal(t, int32(1), slow.calls.Load())
}

func TestClassifyText_ClassifierError(t *testing.T) {
	classifier := new(MockClassifier)
	uc, _ := newTestUsecase(t, classifier, nil, time.Second)

	classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("model exploded")).Once()

	_, err := uc.ClassifyText(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrClassification)
	// The upstream error text must not leak through the taxonomy error.
	assert.NotContains(t, err.Error(), "model exploded")
}

func TestClassifyImage(t *testing.T) {
	t.Run("empty image url", func(t *testing.T) {
		uc, _ := newTestUsecase(t, nil, new(MockClassifier), time.Second)
		_, err := uc.ClassifyImage(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptyImageURL)
	})

	t.Run("classifies and caches by raw url", func(t *testing.T) {
		imageClassifier := new(MockClassifier)
		uc, _ := newTestUsecase(t, nil, imageClassifier, time.Second)

		imageClassifier.On("Classify", mock.Anything, "https://example.com/pothole.jpg", mock.Anything).
			Return([]service.LabelScore{{Label: "Road", Score: 0.8}}, nil).Once()

		r1, err := uc.ClassifyImage(context.Background(), "https://example.com/pothole.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Road", r1.Label)
		assert.Equal(t, "Road", r1.OriginalLabel)

		r2, err := uc.ClassifyImage(context.Background(), "https://example.com/pothole.jpg")
		require.NoError(t, err)
		assert.Equal(t, r1, r2)

		imageClassifier.AssertExpectations(t)
	})

	t.Run("url casing is significant for image keys", func(t *testing.T) {
		imageClassifier := new(MockClassifier)
		uc, _ := newTestUsecase(t, nil, imageClassifier, time.Second)

		imageClassifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).
			Return([]service.LabelScore{{Label: "Road", Score: 0.8}}, nil).Twice()

		_, err := uc.ClassifyImage(context.Background(), "https://example.com/A.jpg")
		require.NoError(t, err)
		_, err = uc.ClassifyImage(context.Background(), "https://example.com/a.jpg")
		require.NoError(t, err)

		imageClassifier.AssertExpectations(t)
	})
}
