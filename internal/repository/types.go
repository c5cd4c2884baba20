package repository

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Language string
	Category string
	Search   string // 标题、slug、摘要模糊匹配
}

// ApplicationListFilter 查询应用列表的过滤条件
type ApplicationListFilter struct {
	Language string
}
