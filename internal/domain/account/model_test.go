package account_test

import (
	"testing"

	"clubplan/internal/domain/account"
)

// TestAccount_Validate tests validation of Account.
func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		acct    account.Account
		wantErr bool
	}{
		{
			name:    "valid marketing account",
			acct:    account.Account{ID: "1", Email: "anna@bc-club.de", Name: "Anna", Group: account.GroupMarketing},
			wantErr: false,
		},
		{
			name:    "valid member account",
			acct:    account.Account{ID: "2", Email: "ben@bc-club.de", Name: "Ben", Group: account.GroupMitglied, ClubTitle: "bc-Club"},
			wantErr: false,
		},
		{
			name:    "empty email",
			acct:    account.Account{ID: "3", Name: "Clara", Group: account.GroupMitglied},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			acct:    account.Account{ID: "4", Email: "clara.example.org", Name: "Clara", Group: account.GroupMitglied},
			wantErr: true,
		},
		{
			name:    "empty name",
			acct:    account.Account{ID: "5", Email: "d@example.org", Group: account.GroupMitglied},
			wantErr: true,
		},
		{
			name:    "invalid group",
			acct:    account.Account{ID: "6", Email: "e@example.org", Name: "Eva", Group: "vorstand"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.acct.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestAccount_PasswordRoundTrip tests SetPassword + CheckPassword.
func TestAccount_PasswordRoundTrip(t *testing.T) {
	a := account.Account{Email: "anna@bc-club.de", Name: "Anna", Group: account.GroupClubleitung}
	if err := a.SetPassword("kurz"); err != account.ErrPasswordTooShort {
		t.Errorf("short password: got %v, want ErrPasswordTooShort", err)
	}
	if err := a.SetPassword("ein langes passwort"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := a.CheckPassword("ein langes passwort"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := a.CheckPassword("falsches passwort"); err != account.ErrWrongPassword {
		t.Errorf("CheckPassword with wrong password: got %v, want ErrWrongPassword", err)
	}
}

// TestAccount_CanManageEvents tests the group gate for event management.
func TestAccount_CanManageEvents(t *testing.T) {
	for group, want := range map[string]bool{
		account.GroupMarketing:   true,
		account.GroupClubleitung: true,
		account.GroupMitglied:    false,
	} {
		a := account.Account{Group: group}
		if got := a.CanManageEvents(); got != want {
			t.Errorf("CanManageEvents() for %s = %v, want %v", group, got, want)
		}
	}
}
