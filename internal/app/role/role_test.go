package role

import "testing"

func TestIsValid(t *testing.T) {
	for _, r := range All {
		if !IsValid(r) {
			t.Errorf("IsValid(%s) = false, want true", r)
		}
	}
	if IsValid("moderator") {
		t.Error("IsValid(moderator) = true, want false")
	}
	if IsValid("") {
		t.Error("IsValid(\"\") = true, want false")
	}
}

func TestCan(t *testing.T) {
	tests := []struct {
		name string
		role Role
		perm Permission
		want bool
	}{
		{"администратор управляет пользователями", Admin, ManageUsers, true},
		{"сотрудник не управляет пользователями", Employee, ManageUsers, false},
		{"сотрудник задаёт наценки", Employee, SetMarkups, true},
		{"экспедитор не задаёт наценки", Forwarder, SetMarkups, false},
		{"экспедитор добавляет тарифы", Forwarder, AddTariffs, true},
		{"клиент не добавляет тарифы", Client, AddTariffs, false},
		{"клиент считает стоимость", Client, CalculateQuotes, true},
		{"клиент генерирует КП", Client, GenerateOffers, true},
		{"клиент не видит историю запросов", Client, ViewRequestHistory, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.role, tt.perm); got != tt.want {
				t.Errorf("Can(%s, %d) = %v, want %v", tt.role, tt.perm, got, tt.want)
			}
		})
	}
}

func TestAllowedCoversEveryPermission(t *testing.T) {
	perms := []Permission{
		ManageUsers, ManageForwardersClients, SetMarkups, ViewArchive,
		ViewRequestHistory, AddTariffs, CalculateQuotes, GenerateOffers,
	}
	for _, p := range perms {
		if len(Allowed(p)) == 0 {
			t.Errorf("Allowed(%d) пуст", p)
		}
	}
}
