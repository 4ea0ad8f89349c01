package logic

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/bluecarbon/bcms/internal/model"
	"github.com/bluecarbon/bcms/internal/pinning"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePinner 测试用固定服务客户端
type fakePinner struct {
	fail bool
	meta map[string]string
}

func (f *fakePinner) Pin(_ context.Context, body io.Reader, filename, contentType string, meta map[string]string) (*pinning.PinResult, error) {
	if f.fail {
		return nil, apperr.New(apperr.KindUpstream, "pinning service unreachable")
	}
	f.meta = meta
	io.Copy(io.Discard, body)
	return &pinning.PinResult{
		Cid:      "QmFakeCid",
		ImageURL: "https://gateway.example.com/ipfs/QmFakeCid",
		Size:     99,
	}, nil
}

func newTestLogic(t *testing.T, pinner pinning.Pinner) (*SubmissionLogic, store.Store) {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewSubmissionLogic(s, pinner), s
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		Description:      "Restored mangrove belt",
		Title:            "Plot 7",
		ApplicantAddress: "0x8ba1f109551bd432803012645ac136ddd64dba72",
		Latitude:         "9.93",
		Longitude:        "76.26",
		File:             strings.NewReader("image-bytes"),
		FileName:         "plot7.jpg",
		FileType:         "image/jpeg",
		FileSize:         11,
	}
}

func TestSubmitSuccess(t *testing.T) {
	l, _ := newTestLogic(t, &fakePinner{})
	ctx := context.Background()

	submission, err := l.Submit(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, submission.Id)
	assert.Equal(t, "Restored mangrove belt", submission.Description)
	assert.Equal(t, model.SubmissionStatusPending, submission.Status)
	assert.Equal(t, "QmFakeCid", submission.Cid)
	assert.Equal(t, "https://gateway.example.com/ipfs/QmFakeCid", submission.ImageURL)
	assert.False(t, submission.CreatedAt.IsZero())

	// 已落库
	got, err := l.GetSubmission(ctx, submission.Id)
	require.NoError(t, err)
	assert.Equal(t, submission.Id, got.Id)
}

func TestSubmitNormalizesApplicantAddress(t *testing.T) {
	l, _ := newTestLogic(t, &fakePinner{})

	submission, err := l.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "0x8ba1f109551bD432803012645Ac136ddd64DBA72", submission.ApplicantAddress)
}

func TestSubmitKeepsNonHexAddressVerbatim(t *testing.T) {
	l, _ := newTestLogic(t, &fakePinner{})

	req := validRequest()
	req.ApplicantAddress = "not-an-address"
	submission, err := l.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "not-an-address", submission.ApplicantAddress)
}

func TestSubmitPassesUploaderMetadata(t *testing.T) {
	pinner := &fakePinner{}
	l, _ := newTestLogic(t, pinner)

	_, err := l.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Restored mangrove belt", pinner.meta["description"])
	assert.Equal(t, "0x8ba1f109551bd432803012645ac136ddd64dba72", pinner.meta["uploader"])
}

func TestSubmitMissingDescription(t *testing.T) {
	l, s := newTestLogic(t, &fakePinner{})
	ctx := context.Background()

	req := validRequest()
	req.Description = ""
	_, err := l.Submit(ctx, req)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	// 不产生任何记录
	submissions, err := s.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, submissions)
}

func TestSubmitMissingFile(t *testing.T) {
	l, s := newTestLogic(t, &fakePinner{})
	ctx := context.Background()

	req := validRequest()
	req.File = nil
	_, err := l.Submit(ctx, req)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	submissions, err := s.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, submissions)
}

func TestSubmitPinFailureLeavesStoreUnchanged(t *testing.T) {
	l, s := newTestLogic(t, &fakePinner{fail: true})
	ctx := context.Background()

	_, err := l.Submit(ctx, validRequest())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUpstream))

	submissions, err := s.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, submissions)
}

func TestMarkMintedUnknownId(t *testing.T) {
	l, s := newTestLogic(t, &fakePinner{})
	ctx := context.Background()

	created, err := l.Submit(ctx, validRequest())
	require.NoError(t, err)

	_, err = l.MarkMinted(ctx, "missing", MintEvidence{TxHash: "0xabc"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// 原有记录不受影响
	got, err := s.GetSubmission(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusPending, got.Status)
	assert.Empty(t, got.TxHash)
}

func TestMarkMintedIsIdempotent(t *testing.T) {
	l, _ := newTestLogic(t, &fakePinner{})
	ctx := context.Background()

	created, err := l.Submit(ctx, validRequest())
	require.NoError(t, err)

	evidence := MintEvidence{
		TxHash:      "0xdeadbeef",
		TokenId:     "7",
		MetadataURI: "ipfs://QmMeta",
	}

	first, err := l.MarkMinted(ctx, created.Id, evidence)
	require.NoError(t, err)
	second, err := l.MarkMinted(ctx, created.Id, evidence)
	require.NoError(t, err)

	for _, got := range []*model.Submission{first, second} {
		assert.Equal(t, model.SubmissionStatusApproved, got.Status)
		assert.Equal(t, "0xdeadbeef", got.TxHash)
		assert.Equal(t, "7", got.TokenId)
		assert.Equal(t, "ipfs://QmMeta", got.MetadataURI)
	}
}

func TestGetMetadata(t *testing.T) {
	l, _ := newTestLogic(t, &fakePinner{})
	ctx := context.Background()

	created, err := l.Submit(ctx, validRequest())
	require.NoError(t, err)

	metadata, err := l.GetMetadata(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Plot 7", metadata.Name)
	assert.Equal(t, "Restored mangrove belt", metadata.Description)
	assert.Equal(t, "https://gateway.example.com/ipfs/QmFakeCid", metadata.Image)
	require.Len(t, metadata.Attributes, 3)
	assert.Equal(t, "Latitude", metadata.Attributes[1].TraitType)
	assert.Equal(t, "9.93", metadata.Attributes[1].Value)
}

func TestGetMetadataUnknownId(t *testing.T) {
	l, _ := newTestLogic(t, &fakePinner{})

	_, err := l.GetMetadata(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
