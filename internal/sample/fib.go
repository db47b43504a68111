package sample

// Fibonacci returns the first limit Fibonacci numbers, starting at 0.
func Fibonacci(limit int) []int {
	values := make([]int, 0, limit)

	a, b := 0, 1
	for i := 0; i < limit; i++ {
		values = append(values, a)
		a, b = b, a+b
	}

	return values
}
