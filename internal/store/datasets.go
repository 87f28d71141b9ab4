package store

import (
	"sync"

	"twa-synth/internal/domain"
)

// DatasetStore 内存数据集库
// 规格约定核心不做跨运行持久化，HTTP 层只在进程内持有生成结果供分页/导出；
// 进程重启后通过相同配置与种子重新生成即可复现。
type DatasetStore struct {
	mu       sync.RWMutex
	datasets map[string]*domain.Dataset
	order    []string // 插入序，列表接口按此返回
}

// NewDatasetStore 创建空库
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{datasets: make(map[string]*domain.Dataset)}
}

// Put 存入数据集（同 ID 覆盖但保持原插入位置）
func (s *DatasetStore) Put(ds *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.datasets[ds.DatasetID]; !ok {
		s.order = append(s.order, ds.DatasetID)
	}
	s.datasets[ds.DatasetID] = ds
}

// Get 按 ID 取数据集；不存在返回 ErrDatasetNotFound
func (s *DatasetStore) Get(id string) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[id]
	if !ok {
		return nil, domain.ErrDatasetNotFound
	}
	return ds, nil
}

// List 按插入序返回全部数据集
func (s *DatasetStore) List() []*domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Dataset, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.datasets[id])
	}
	return out
}

// Delete 删除数据集（幂等）
func (s *DatasetStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.datasets[id]; !ok {
		return
	}
	delete(s.datasets, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
