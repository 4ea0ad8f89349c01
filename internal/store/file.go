package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/bluecarbon/bcms/internal/model"
)

// 各集合对应的数据文件名
const (
	submissionsFile = "submissions.json"
	projectsFile    = "projects.json"
	baselinesFile   = "baselines.json"
	activitiesFile  = "activities.json"
	mrvRecordsFile  = "mrv_records.json"
)

// FileStore 本地JSON文件存储实现。每个集合一个JSON数组文件，
// 整体读出、内存修改、整体写回。所有写操作经mu串行化，
// 保证并发追加不会互相覆盖。
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore 创建文件存储，数据目录不存在时自动创建
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage dir not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// loadCollection 读取集合文件，文件不存在视为空集合
func loadCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, apperr.Storage("failed to read data file", err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperr.Storage("failed to decode data file", err)
	}
	return items, nil
}

// saveCollection 整体写回集合文件，先写临时文件再改名
func saveCollection[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return apperr.Storage("failed to encode data file", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperr.Storage("failed to write data file", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return apperr.Storage("failed to write data file", err)
	}
	return nil
}

// applyPatch 通过JSON合并把patch应用到记录上，patch键为列名
func applyPatch[T any](item *T, patch map[string]interface{}) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return apperr.Storage("failed to apply patch", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return apperr.Storage("failed to apply patch", err)
	}
	for k, v := range patch {
		fields[k] = v
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return apperr.Storage("failed to apply patch", err)
	}
	if err := json.Unmarshal(merged, item); err != nil {
		return apperr.Storage("failed to apply patch", err)
	}
	return nil
}

// sortByCreatedDesc 按创建时间倒序排序
func sortByCreatedDesc[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func (s *FileStore) path(file string) string {
	return filepath.Join(s.dir, file)
}

// CreateSubmission 追加提交记录
func (s *FileStore) CreateSubmission(_ context.Context, submission *model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Submission](s.path(submissionsFile))
	if err != nil {
		return err
	}

	now := time.Now()
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = now
	}
	submission.UpdatedAt = now

	items = append(items, *submission)
	return saveCollection(s.path(submissionsFile), items)
}

// ListSubmissions 按创建时间倒序获取提交记录列表
func (s *FileStore) ListSubmissions(_ context.Context) ([]model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Submission](s.path(submissionsFile))
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(items, func(v model.Submission) time.Time { return v.CreatedAt })
	return items, nil
}

// GetSubmission 获取单条提交记录
func (s *FileStore) GetSubmission(_ context.Context, id string) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Submission](s.path(submissionsFile))
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Id == id {
			return &items[i], nil
		}
	}
	return nil, apperr.Newf(apperr.KindNotFound, "submission %s not found", id)
}

// UpdateSubmission 按列名patch更新提交记录并返回更新后的值
func (s *FileStore) UpdateSubmission(_ context.Context, id string, patch map[string]interface{}) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Submission](s.path(submissionsFile))
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Id != id {
			continue
		}
		if err := applyPatch(&items[i], patch); err != nil {
			return nil, err
		}
		items[i].UpdatedAt = time.Now()
		if err := saveCollection(s.path(submissionsFile), items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, apperr.Newf(apperr.KindNotFound, "submission %s not found", id)
}

// CreateProject 追加项目
func (s *FileStore) CreateProject(_ context.Context, project *model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Project](s.path(projectsFile))
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ProjectId == project.ProjectId {
			return apperr.Newf(apperr.KindStorage, "project %s already exists", project.ProjectId)
		}
	}

	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	items = append(items, *project)
	return saveCollection(s.path(projectsFile), items)
}

// ListProjects 按创建时间倒序获取项目列表
func (s *FileStore) ListProjects(_ context.Context) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Project](s.path(projectsFile))
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(items, func(v model.Project) time.Time { return v.CreatedAt })
	return items, nil
}

// GetProject 获取单个项目
func (s *FileStore) GetProject(_ context.Context, projectId string) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Project](s.path(projectsFile))
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProjectId == projectId {
			return &items[i], nil
		}
	}
	return nil, apperr.Newf(apperr.KindNotFound, "project %s not found", projectId)
}

// UpdateProject 按列名patch更新项目并返回更新后的值
func (s *FileStore) UpdateProject(_ context.Context, projectId string, patch map[string]interface{}) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Project](s.path(projectsFile))
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProjectId != projectId {
			continue
		}
		if err := applyPatch(&items[i], patch); err != nil {
			return nil, err
		}
		items[i].UpdatedAt = time.Now()
		if err := saveCollection(s.path(projectsFile), items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, apperr.Newf(apperr.KindNotFound, "project %s not found", projectId)
}

// CreateBaseline 追加基线数据
func (s *FileStore) CreateBaseline(_ context.Context, baseline *model.Baseline) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Baseline](s.path(baselinesFile))
	if err != nil {
		return err
	}

	now := time.Now()
	if baseline.CreatedAt.IsZero() {
		baseline.CreatedAt = now
	}
	baseline.UpdatedAt = now

	items = append(items, *baseline)
	return saveCollection(s.path(baselinesFile), items)
}

// ListBaselines 按创建时间倒序获取全部基线数据
func (s *FileStore) ListBaselines(_ context.Context) ([]model.Baseline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Baseline](s.path(baselinesFile))
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(items, func(v model.Baseline) time.Time { return v.CreatedAt })
	return items, nil
}

// ListBaselinesByProject 按创建时间倒序获取项目的基线数据
func (s *FileStore) ListBaselinesByProject(ctx context.Context, projectId string) ([]model.Baseline, error) {
	items, err := s.ListBaselines(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.Baseline, 0, len(items))
	for _, item := range items {
		if item.ProjectId == projectId {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// CreateActivity 追加活动记录
func (s *FileStore) CreateActivity(_ context.Context, activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Activity](s.path(activitiesFile))
	if err != nil {
		return err
	}

	now := time.Now()
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = now
	}
	activity.UpdatedAt = now

	items = append(items, *activity)
	return saveCollection(s.path(activitiesFile), items)
}

// ListActivities 按创建时间倒序获取全部活动记录
func (s *FileStore) ListActivities(_ context.Context) ([]model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.Activity](s.path(activitiesFile))
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(items, func(v model.Activity) time.Time { return v.CreatedAt })
	return items, nil
}

// ListActivitiesByProject 按创建时间倒序获取项目的活动记录
func (s *FileStore) ListActivitiesByProject(ctx context.Context, projectId string) ([]model.Activity, error) {
	items, err := s.ListActivities(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.Activity, 0, len(items))
	for _, item := range items {
		if item.ProjectId == projectId {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// CreateMRVRecord 追加MRV记录
func (s *FileStore) CreateMRVRecord(_ context.Context, record *model.MRVRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.MRVRecord](s.path(mrvRecordsFile))
	if err != nil {
		return err
	}

	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	items = append(items, *record)
	return saveCollection(s.path(mrvRecordsFile), items)
}

// ListMRVRecords 按创建时间倒序获取全部MRV记录
func (s *FileStore) ListMRVRecords(_ context.Context) ([]model.MRVRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := loadCollection[model.MRVRecord](s.path(mrvRecordsFile))
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(items, func(v model.MRVRecord) time.Time { return v.CreatedAt })
	return items, nil
}

// ListMRVRecordsByProject 按创建时间倒序获取项目的MRV记录
func (s *FileStore) ListMRVRecordsByProject(ctx context.Context, projectId string) ([]model.MRVRecord, error) {
	items, err := s.ListMRVRecords(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.MRVRecord, 0, len(items))
	for _, item := range items {
		if item.ProjectId == projectId {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
