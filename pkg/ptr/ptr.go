package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для заполнения опциональных полей структур
func Ptr[T any](v T) *T {
	return &v
}

// Value возвращает значение по указателю или fallback, если указатель nil
func Value[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
