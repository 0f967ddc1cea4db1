package service

import "testing"

func TestCanMutate(t *testing.T) {
	owner := 1

	// 管理員 × 擁有者、管理員 × 非擁有者、一般 × 擁有者、一般 × 非擁有者
	cases := []struct {
		name    string
		claims  Claims
		ownerID *int
		want    bool
	}{
		{"admin owner", Claims{UserID: 1, IsAdmin: true}, &owner, true},
		{"admin non-owner", Claims{UserID: 2, IsAdmin: true}, &owner, true},
		{"non-admin owner", Claims{UserID: 1, IsAdmin: false}, &owner, true},
		{"non-admin non-owner", Claims{UserID: 2, IsAdmin: false}, &owner, false},
		{"admin nil owner", Claims{UserID: 1, IsAdmin: true}, nil, true},
		{"non-admin nil owner", Claims{UserID: 1, IsAdmin: false}, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanMutate(&tc.claims, tc.ownerID); got != tc.want {
				t.Fatalf("CanMutate(%+v, %v) = %v, want %v", tc.claims, tc.ownerID, got, tc.want)
			}
		})
	}
}
