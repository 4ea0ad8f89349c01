package logic

import (
	"context"
	"io"
	"time"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/bluecarbon/bcms/internal/logger"
	"github.com/bluecarbon/bcms/internal/model"
	"github.com/bluecarbon/bcms/internal/pinning"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// SubmissionLogic 提交记录业务逻辑
type SubmissionLogic struct {
	store  store.Store
	pinner pinning.Pinner
}

// NewSubmissionLogic 创建提交记录业务逻辑
func NewSubmissionLogic(s store.Store, p pinning.Pinner) *SubmissionLogic {
	return &SubmissionLogic{store: s, pinner: p}
}

// SubmitRequest 提交请求参数
type SubmitRequest struct {
	Description      string
	Title            string
	ApplicantAddress string
	Latitude         string
	Longitude        string
	File             io.Reader
	FileName         string
	FileType         string
	FileSize         int64
}

// MintEvidence 铸造凭证，原样存储不做校验
type MintEvidence struct {
	TxHash      string `json:"txHash"`
	TokenId     string `json:"tokenId"`
	MetadataURI string `json:"metadataURI"`
}

// TokenMetadata 下游代币元数据视图
type TokenMetadata struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Attributes  []MetadataAttribute `json:"attributes"`
}

// MetadataAttribute 元数据属性
type MetadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Submit 提交流程：校验 → 上传固定服务 → 组装记录 → 落库。
// 固定服务失败时不会产生任何记录；落库失败时已固定的内容
// 不做补偿删除，接受产生孤儿文件。
func (l *SubmissionLogic) Submit(ctx context.Context, req SubmitRequest) (*model.Submission, error) {
	// 校验必填项
	if req.Description == "" {
		return nil, apperr.Validation("missing description")
	}
	if req.File == nil {
		return nil, apperr.Validation("missing file")
	}

	// 上传固定服务
	meta := map[string]string{
		"description": req.Description,
	}
	if req.ApplicantAddress != "" {
		meta["uploader"] = req.ApplicantAddress
	}
	pinned, err := l.pinner.Pin(ctx, req.File, req.FileName, req.FileType, meta)
	if err != nil {
		return nil, err
	}

	// 组装记录
	size := req.FileSize
	if size == 0 {
		size = pinned.Size
	}
	submission := &model.Submission{
		Id:               uuid.NewString(),
		ApplicantAddress: normalizeAddress(req.ApplicantAddress),
		Title:            req.Title,
		Description:      req.Description,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Cid:              pinned.Cid,
		ImageURL:         pinned.ImageURL,
		FileName:         req.FileName,
		FileType:         req.FileType,
		FileSize:         size,
		Status:           model.SubmissionStatusPending,
		CreatedAt:        time.Now(),
	}

	// 落库
	if err := l.store.CreateSubmission(ctx, submission); err != nil {
		logger.Error("Failed to persist submission %s (cid=%s left pinned): %v", submission.Id, submission.Cid, err)
		return nil, err
	}

	logger.Info("Created submission %s, cid=%s", submission.Id, submission.Cid)
	return submission, nil
}

// GetSubmissions 获取提交记录列表
func (l *SubmissionLogic) GetSubmissions(ctx context.Context) ([]model.Submission, error) {
	return l.store.ListSubmissions(ctx)
}

// GetSubmission 获取单条提交记录
func (l *SubmissionLogic) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	return l.store.GetSubmission(ctx, id)
}

// GetMetadata 获取代币元数据视图
func (l *SubmissionLogic) GetMetadata(ctx context.Context, id string) (*TokenMetadata, error) {
	submission, err := l.store.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	name := submission.Title
	if name == "" {
		name = "Blue Carbon Submission"
	}

	return &TokenMetadata{
		Name:        name,
		Description: submission.Description,
		Image:       submission.ImageURL,
		Attributes: []MetadataAttribute{
			{TraitType: "Applicant Address", Value: submission.ApplicantAddress},
			{TraitType: "Latitude", Value: submission.Latitude},
			{TraitType: "Longitude", Value: submission.Longitude},
		},
	}, nil
}

// MarkMinted 将提交记录标记为已铸造并原样回填凭证字段。
// 不校验凭证内容，也不要求先前状态为pending，重复调用等价。
func (l *SubmissionLogic) MarkMinted(ctx context.Context, id string, evidence MintEvidence) (*model.Submission, error) {
	patch := map[string]interface{}{
		"status":       string(model.SubmissionStatusApproved),
		"tx_hash":      evidence.TxHash,
		"token_id":     evidence.TokenId,
		"metadata_uri": evidence.MetadataURI,
	}

	submission, err := l.store.UpdateSubmission(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	logger.Info("Submission %s marked minted, tx=%s token=%s", id, evidence.TxHash, evidence.TokenId)
	return submission, nil
}

// normalizeAddress 合法的十六进制地址统一为EIP-55校验和格式，
// 其余输入原样保留
func normalizeAddress(addr string) string {
	if addr == "" || !common.IsHexAddress(addr) {
		return addr
	}
	return common.HexToAddress(addr).Hex()
}
