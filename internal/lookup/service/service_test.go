package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Upstream,GuardLister,HistoryStore,Recorder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"idlookup/internal/lookup/guard"
	"idlookup/internal/lookup/models"
	"idlookup/internal/lookup/providers"
	"idlookup/internal/lookup/providers/identity"
	"idlookup/internal/lookup/providers/number"
	"idlookup/internal/lookup/service/mocks"
)

const (
	validIdentity = "123456789012"
	validNumber   = "9876543210"
)

type SearchSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUpstream *mocks.MockUpstream
	mockGuard    *mocks.MockGuardLister
	mockHistory  *mocks.MockHistoryStore
	identitySvc  *Service[models.IdentityRecord]
	numberSvc    *Service[models.NumberRecord]
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func (s *SearchSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUpstream = mocks.NewMockUpstream(s.ctrl)
	s.mockGuard = mocks.NewMockGuardLister(s.ctrl)
	s.mockHistory = mocks.NewMockHistoryStore(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.identitySvc = New(models.CategoryIdentity, s.mockUpstream, s.mockGuard, s.mockHistory,
		identity.Normalize, WithLogger(logger))
	s.numberSvc = New(models.CategoryNumber, s.mockUpstream, s.mockGuard, s.mockHistory,
		number.Normalize, WithLogger(logger))
}

func (s *SearchSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SearchSuite) TestRejectsMalformedQueryWithoutAnyCall() {
	// No EXPECT on guard, upstream or history: any call fails the test.
	identityInputs := []string{"", "12345", "12345678901", "1234567890123", "12345678901a", " 23456789012", "１２３４５６７８９０１２"}
	for _, in := range identityInputs {
		s.Run("identity "+in, func() {
			res, err := s.identitySvc.Search(context.Background(), in)
			s.Nil(res)
			s.True(providers.IsKind(err, providers.KindValidation))
			s.Equal(providers.MsgInvalidIdentity, providers.UserMessage(err))
		})
	}

	numberInputs := []string{"", "98765", "98765432101", "987654321x", "+919876543"}
	for _, in := range numberInputs {
		s.Run("number "+in, func() {
			res, err := s.numberSvc.Search(context.Background(), in)
			s.Nil(res)
			s.True(providers.IsKind(err, providers.KindValidation))
			s.Equal(providers.MsgInvalidNumber, providers.UserMessage(err))
		})
	}
}

func (s *SearchSuite) TestBlockedQueryIssuesNoLookup() {
	s.mockGuard.EXPECT().Fetch(gomock.Any(), models.CategoryIdentity).
		Return(guard.Set{validIdentity: {}})

	res, err := s.identitySvc.Search(context.Background(), validIdentity)

	s.Nil(res)
	s.True(providers.IsKind(err, providers.KindBlocked))
	s.Equal(providers.MsgBlocked, providers.UserMessage(err))
}

func (s *SearchSuite) TestGuardCheckPrecedesLookupAndHistoryFollowsSuccess() {
	body := []byte(`{"data":{"address":"12 Lake Road","memberDetailsList":[{"memberName":"Bob","releationship_name":"Son"}]}}`)

	gomock.InOrder(
		s.mockGuard.EXPECT().Fetch(gomock.Any(), models.CategoryIdentity).Return(guard.Set{"999999999999": {}}),
		s.mockUpstream.EXPECT().Fetch(gomock.Any(), validIdentity).Return(body, nil),
		s.mockHistory.EXPECT().Add(gomock.Any(), models.CategoryIdentity, validIdentity).
			Return([]string{validIdentity, "111111111111"}),
	)

	res, err := s.identitySvc.Search(context.Background(), validIdentity)

	s.Require().NoError(err)
	s.Equal(models.CategoryIdentity, res.Category)
	s.Equal(validIdentity, res.Query)
	s.Equal("12 Lake Road", res.Record.Address)
	s.Equal([]models.Member{{Name: "Bob", Relation: "Son"}}, res.Record.Members)
	s.Equal([]string{validIdentity, "111111111111"}, res.History)
}

func (s *SearchSuite) TestUpstreamFailuresSkipHistory() {
	tests := []struct {
		name     string
		err      error
		wantKind providers.ErrorKind
		wantMsg  string
	}{
		{
			name:     "non-2xx status embeds the code",
			err:      providers.NewStatusError(models.CategoryIdentity, 503),
			wantKind: providers.KindNetwork,
			wantMsg:  "The server responded with an error (Status: 503)",
		},
		{
			name:     "connectivity",
			err:      providers.NewLookupError(providers.KindNetwork, models.CategoryIdentity, providers.MsgConnectivity, errors.New("dial tcp: refused")),
			wantKind: providers.KindNetwork,
			wantMsg:  providers.MsgConnectivity,
		},
		{
			name:     "unparseable body",
			err:      providers.NewLookupError(providers.KindParse, models.CategoryIdentity, providers.MsgUnparseable, nil),
			wantKind: providers.KindParse,
			wantMsg:  providers.MsgUnparseable,
		},
		{
			name:     "untyped error becomes generic",
			err:      errors.New("boom"),
			wantKind: providers.KindInternal,
			wantMsg:  providers.MsgSomethingWrong,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockGuard.EXPECT().Fetch(gomock.Any(), models.CategoryIdentity).Return(guard.Set{})
			s.mockUpstream.EXPECT().Fetch(gomock.Any(), validIdentity).Return(nil, tt.err)

			res, err := s.identitySvc.Search(context.Background(), validIdentity)

			s.Nil(res)
			s.Equal(tt.wantKind, providers.KindOf(err))
			s.Equal(tt.wantMsg, providers.UserMessage(err))
		})
	}
}

func (s *SearchSuite) TestNormalizerRejectionsSkipHistory() {
	tests := []struct {
		name     string
		body     string
		wantKind providers.ErrorKind
		wantMsg  string
	}{
		{"status false uses msg", `{"status":false,"msg":"X"}`, providers.KindNotFound, "X"},
		{"status false default message", `{"status":false}`, providers.KindNotFound, providers.MsgIdentityNotFound},
		{"missing address", `{"data":{}}`, providers.KindInvalidResponse, providers.MsgInvalidResponse},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockGuard.EXPECT().Fetch(gomock.Any(), models.CategoryIdentity).Return(guard.Set{})
			s.mockUpstream.EXPECT().Fetch(gomock.Any(), validIdentity).Return([]byte(tt.body), nil)

			res, err := s.identitySvc.Search(context.Background(), validIdentity)

			s.Nil(res)
			s.Equal(tt.wantKind, providers.KindOf(err))
			s.Equal(tt.wantMsg, providers.UserMessage(err))
		})
	}
}

func (s *SearchSuite) TestNumberSearch() {
	s.Run("mobile falls back to the query", func() {
		s.mockGuard.EXPECT().Fetch(gomock.Any(), models.CategoryNumber).Return(guard.Set{})
		s.mockUpstream.EXPECT().Fetch(gomock.Any(), validNumber).
			Return([]byte(`{"status":"success","data":{"name":"Bob"}}`), nil)
		s.mockHistory.EXPECT().Add(gomock.Any(), models.CategoryNumber, validNumber).Return([]string{validNumber})

		res, err := s.numberSvc.Search(context.Background(), validNumber)

		s.Require().NoError(err)
		s.Equal(validNumber, res.Record.Mobile)
		s.Equal("Bob", res.Record.Name)
		s.Equal(models.Unknown, res.Record.Father)
		s.Equal(models.Unknown, res.Record.Email)
	})

	s.Run("missing name is not found", func() {
		s.mockGuard.EXPECT().Fetch(gomock.Any(), models.CategoryNumber).Return(guard.Set{})
		s.mockUpstream.EXPECT().Fetch(gomock.Any(), validNumber).
			Return([]byte(`{"status":"success","data":{}}`), nil)

		res, err := s.numberSvc.Search(context.Background(), validNumber)

		s.Nil(res)
		s.True(providers.IsKind(err, providers.KindNotFound))
		s.Equal(providers.MsgNumberNotFound, providers.UserMessage(err))
	})

	s.Run("identity guard list does not protect numbers", func() {
		s.mockGuard.EXPECT().Fetch(gomock.Any(), models.CategoryNumber).Return(guard.Set{validIdentity: {}})
		s.mockUpstream.EXPECT().Fetch(gomock.Any(), validNumber).
			Return([]byte(`{"status":"error"}`), nil)

		_, err := s.numberSvc.Search(context.Background(), validNumber)
		s.True(providers.IsKind(err, providers.KindNotFound))
	})
}

func (s *SearchSuite) TestHistoryDelegatesToStore() {
	s.mockHistory.EXPECT().Get(gomock.Any(), models.CategoryNumber).Return([]string{validNumber})

	s.Equal([]string{validNumber}, s.numberSvc.History(context.Background()))
	s.Equal(models.CategoryNumber, s.numberSvc.Category())
}

func (s *SearchSuite) TestRecordsOutcomeMetrics() {
	rec := mocks.NewMockRecorder(s.ctrl)
	svc := New(models.CategoryIdentity, s.mockUpstream, s.mockGuard, s.mockHistory,
		identity.Normalize, WithRecorder(rec))

	s.Run("rejected", func() {
		rec.EXPECT().RecordSearch("identity", OutcomeRejected)
		_, _ = svc.Search(context.Background(), "12345")
	})

	s.Run("success", func() {
		s.mockGuard.EXPECT().Fetch(gomock.Any(), models.CategoryIdentity).Return(guard.Set{})
		s.mockUpstream.EXPECT().Fetch(gomock.Any(), validIdentity).Return([]byte(`{"address":"A"}`), nil)
		s.mockHistory.EXPECT().Add(gomock.Any(), models.CategoryIdentity, validIdentity).Return([]string{validIdentity})
		rec.EXPECT().ObserveUpstreamDuration("identity", gomock.Any())
		rec.EXPECT().RecordSearch("identity", OutcomeSuccess)

		_, err := svc.Search(context.Background(), validIdentity)
		s.NoError(err)
	})
}

func TestOutcomeFor(t *testing.T) {
	cases := map[providers.ErrorKind]string{
		providers.KindValidation:      OutcomeRejected,
		providers.KindBlocked:         OutcomeBlocked,
		providers.KindNetwork:         OutcomeNetwork,
		providers.KindParse:           OutcomeParse,
		providers.KindNotFound:        OutcomeNotFound,
		providers.KindInvalidResponse: OutcomeInvalid,
		providers.KindInternal:        OutcomeInternal,
	}
	for kind, want := range cases {
		err := providers.NewLookupError(kind, models.CategoryIdentity, "m", nil)
		if got := outcomeFor(err); got != want {
			t.Errorf("outcomeFor(%s) = %s, want %s", kind, got, want)
		}
	}
	if got := outcomeFor(nil); got != OutcomeSuccess {
		t.Errorf("outcomeFor(nil) = %s, want %s", got, OutcomeSuccess)
	}
}
