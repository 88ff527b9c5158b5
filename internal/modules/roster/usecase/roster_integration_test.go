package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mpt/internal/modules/roster/adapter/out"
	"mpt/internal/modules/roster/dto"
	rosterin "mpt/internal/modules/roster/port/in"
	"mpt/internal/modules/roster/service"
	"mpt/internal/modules/roster/usecase"
	apperrors "mpt/internal/platform/errors"
)

const rosterFile = `# CSSE1001 roster
s4222222,Priya Shah,priya@example.edu,enrolled
s4111111,Alex Nguyen,alex@example.edu,enrolled
s4333333,Sam Carter,sam@example.edu,not_enrolled
`

func newRosterUsecase(t *testing.T) (rosterin.Usecase, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_info")
	if err := os.WriteFile(path, []byte(rosterFile), 0o644); err != nil {
		t.Fatal(err)
	}
	return usecase.NewInteractor(service.NewRosterService(out.NewCSVUserStore(path))), path
}

func TestListSortsAndFilters(t *testing.T) {
	t.Parallel()

	uc, _ := newRosterUsecase(t)
	ctx := context.Background()

	all, err := uc.List(ctx, dto.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d users, want 3", len(all))
	}
	for i, want := range []string{"s4111111", "s4222222", "s4333333"} {
		if all[i].ID != want {
			t.Errorf("user[%d].ID = %s, want %s", i, all[i].ID, want)
		}
	}

	enrolled, err := uc.List(ctx, dto.ListInput{EnrolFilter: "enrolled"})
	if err != nil {
		t.Fatalf("list enrolled: %v", err)
	}
	if len(enrolled) != 2 {
		t.Errorf("got %d enrolled users, want 2", len(enrolled))
	}

	byQuery, err := uc.List(ctx, dto.ListInput{Query: "NGUYEN"})
	if err != nil {
		t.Fatalf("list by query: %v", err)
	}
	if len(byQuery) != 1 || byQuery[0].ID != "s4111111" {
		t.Errorf("query match = %v, want s4111111 only", byQuery)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	uc, _ := newRosterUsecase(t)
	user, err := uc.Get(context.Background(), "s4222222")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Name != "Priya Shah" {
		t.Errorf("name = %s, want Priya Shah", user.Name)
	}

	_, err = uc.Get(context.Background(), "s9999999")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAddSkipsExistingID(t *testing.T) {
	t.Parallel()

	uc, path := newRosterUsecase(t)
	ctx := context.Background()

	added, err := uc.Add(ctx, dto.AddUserInput{ID: "s4444444", Name: "Robin Lee", Email: "robin@example.edu", Enrolled: "enrolled"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !added {
		t.Error("new user not added")
	}

	// Same id again, different details: the record on file wins.
	added, err = uc.Add(ctx, dto.AddUserInput{ID: "s4444444", Name: "Someone Else", Email: "other@example.edu", Enrolled: "not_enrolled"})
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if added {
		t.Error("duplicate id reported as added")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(raw), "s4444444"); got != 1 {
		t.Errorf("roster mentions s4444444 %d times, want 1", got)
	}
}

func TestAddRejectsInvalidUser(t *testing.T) {
	t.Parallel()

	uc, _ := newRosterUsecase(t)
	_, err := uc.Add(context.Background(), dto.AddUserInput{ID: "s1", Name: "A,B", Email: "a@example.edu", Enrolled: "enrolled"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
