package services

// LoadResult 는 페이지 로더 경계의 결과다.
// 성공이면 Err 가 nil 이고 Items 에 목록이, 실패면 Err 에 원인이 담긴다.
// 페이지 구성은 ItemsOrEmpty 로 두 경우를 같은 빈 상태로 접는다.
type LoadResult[T any] struct {
	Items []T
	Err   error
}

func success[T any](items []T) LoadResult[T] {
	if items == nil {
		items = []T{}
	}
	return LoadResult[T]{Items: items}
}

func failure[T any](err error) LoadResult[T] {
	return LoadResult[T]{Err: err}
}

func (r LoadResult[T]) OK() bool {
	return r.Err == nil
}

// ItemsOrEmpty 는 실패 시에도 nil 이 아닌 빈 슬라이스를 반환한다.
func (r LoadResult[T]) ItemsOrEmpty() []T {
	if r.Err != nil || r.Items == nil {
		return []T{}
	}
	return r.Items
}
