package employee

import "testing"

func TestComputeNetSalary(t *testing.T) {
	cases := []struct {
		name       string
		basic      float64
		allowances float64
		deductions float64
		want       float64
	}{
		{"all components", 50000, 5000, 2000, 53000},
		{"no allowances or deductions", 30000, 0, 0, 30000},
		{"deductions exceed allowances", 10000, 500, 1500, 9000},
	}
	for _, c := range cases {
		got := ComputeNetSalary(c.basic, c.allowances, c.deductions)
		if got != c.want {
			t.Errorf("%s: ComputeNetSalary(%v, %v, %v) = %v, want %v",
				c.name, c.basic, c.allowances, c.deductions, got, c.want)
		}
	}
}

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "Priya", LastName: "Sharma"}
	if got := e.FullName(); got != "Priya Sharma" {
		t.Errorf("FullName() = %q, want %q", got, "Priya Sharma")
	}
}
