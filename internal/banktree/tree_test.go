package banktree

import (
	"testing"

	"exam-service/internal/models"
)

// buildMathBank returns Bank "Math" (depth 1) -> SubBank "Algebra"
// (depth 2) -> SubBank "Linear" (depth 3).
func buildMathBank() *models.Bank {
	return &models.Bank{
		ID:      "math",
		Name:    "Math",
		ExamIDs: []string{"exam-root"},
		SubBanks: []models.SubBank{
			{
				ID:      "algebra",
				Name:    "Algebra",
				ExamIDs: []string{"exam-a1", "exam-a2"},
				SubBanks: []models.SubBank{
					{
						ID:      "linear",
						Name:    "Linear",
						ExamIDs: []string{"exam-l1"},
					},
				},
			},
			{
				ID:   "geometry",
				Name: "Geometry",
			},
		},
	}
}

func TestCanCreateAtPath(t *testing.T) {
	testCases := []struct {
		name          string
		path          []string
		expectCreate  bool
		expectCurrent int
	}{
		{"top level", nil, true, 1},
		{"depth 2 target", []string{"algebra"}, true, 2},
		{"depth 3 target", []string{"algebra", "linear"}, false, 3},
		{"beyond max", []string{"a", "b", "c"}, false, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			check := CanCreateAtPath(tc.path)
			if check.CanCreate != tc.expectCreate {
				t.Errorf("CanCreate = %v, want %v", check.CanCreate, tc.expectCreate)
			}
			if check.CurrentDepth != tc.expectCurrent {
				t.Errorf("CurrentDepth = %d, want %d", check.CurrentDepth, tc.expectCurrent)
			}
			if check.MaxDepth != models.MaxSubBankDepth {
				t.Errorf("MaxDepth = %d, want %d", check.MaxDepth, models.MaxSubBankDepth)
			}
			if !tc.expectCreate && check.Reason == "" {
				t.Error("expected a reason on denied check")
			}
		})
	}
}

func TestCanCreateIn(t *testing.T) {
	bank := buildMathBank()

	check, found := CanCreateIn(bank, "algebra")
	if !found {
		t.Fatal("algebra should be found")
	}
	if !check.CanCreate || check.CurrentDepth != 2 {
		t.Errorf("algebra: got canCreate=%v depth=%d, want true/2", check.CanCreate, check.CurrentDepth)
	}

	check, found = CanCreateIn(bank, "linear")
	if !found {
		t.Fatal("linear should be found")
	}
	if check.CanCreate {
		t.Error("linear sits at max depth, creation must be denied")
	}
	if check.CurrentDepth != 3 {
		t.Errorf("linear depth = %d, want 3", check.CurrentDepth)
	}

	if _, found := CanCreateIn(bank, "missing"); found {
		t.Error("missing sub-bank reported as found")
	}
}

func TestFindSubBankDepthFirst(t *testing.T) {
	bank := buildMathBank()

	node, depth := FindSubBank(bank, "linear")
	if node == nil || node.Name != "Linear" || depth != 3 {
		t.Fatalf("got node=%v depth=%d, want Linear at depth 3", node, depth)
	}

	if node, _ := FindSubBank(bank, "nope"); node != nil {
		t.Errorf("unexpected match: %v", node)
	}
}

func TestResolvePath(t *testing.T) {
	bank := buildMathBank()

	if node := ResolvePath(bank, []string{"algebra", "linear"}); node == nil || node.ID != "linear" {
		t.Fatalf("path algebra/linear resolved to %v", node)
	}
	// Leading bank id is stripped.
	if node := ResolvePath(bank, []string{"math", "algebra"}); node == nil || node.ID != "algebra" {
		t.Fatalf("path math/algebra resolved to %v", node)
	}
	if node := ResolvePath(bank, []string{"algebra", "missing"}); node != nil {
		t.Errorf("unresolvable path returned %v", node)
	}
	if node := ResolvePath(bank, nil); node != nil {
		t.Errorf("empty path returned %v", node)
	}
}

func TestAddRemoveExamSetSemantics(t *testing.T) {
	bank := buildMathBank()
	node, _ := FindSubBank(bank, "geometry")

	if !AddExam(node, "exam-g1") {
		t.Error("first add should report a change")
	}
	if AddExam(node, "exam-g1") {
		t.Error("duplicate add must be a no-op")
	}
	if len(node.ExamIDs) != 1 {
		t.Fatalf("exam list = %v, want one entry", node.ExamIDs)
	}
	if !RemoveExam(node, "exam-g1") {
		t.Error("remove of present id should report a change")
	}
	if RemoveExam(node, "exam-g1") {
		t.Error("remove of absent id must be a no-op")
	}
}

func TestRemoveExamEverywhere(t *testing.T) {
	bank := buildMathBank()
	// Plant the same exam id at several depths.
	bank.ExamIDs = append(bank.ExamIDs, "dup")
	bank.SubBanks[0].ExamIDs = append(bank.SubBanks[0].ExamIDs, "dup")
	bank.SubBanks[0].SubBanks[0].ExamIDs = append(bank.SubBanks[0].SubBanks[0].ExamIDs, "dup")

	if !RemoveExamEverywhere(bank, "dup") {
		t.Fatal("expected a change")
	}
	for _, id := range CollectBankExamIDs(bank) {
		if id == "dup" {
			t.Fatal("dup still present after sweep")
		}
	}
	if RemoveExamEverywhere(bank, "dup") {
		t.Error("second sweep must report no change")
	}
}

func TestCollectExamIDsPreOrder(t *testing.T) {
	bank := buildMathBank()
	node, _ := FindSubBank(bank, "algebra")

	got := CollectExamIDs(node)
	want := []string{"exam-a1", "exam-a2", "exam-l1"}
	if len(got) != len(want) {
		t.Fatalf("collected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collected[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	all := CollectBankExamIDs(bank)
	if len(all) != 4 || all[0] != "exam-root" {
		t.Errorf("bank-wide collection = %v", all)
	}
}

func TestRemoveSubBank(t *testing.T) {
	t.Run("top level", func(t *testing.T) {
		bank := buildMathBank()
		removed, ok := RemoveSubBank(bank, nil, "geometry")
		if !ok || removed.Name != "Geometry" {
			t.Fatalf("got %v ok=%v", removed, ok)
		}
		if len(bank.SubBanks) != 1 {
			t.Errorf("children left = %d, want 1", len(bank.SubBanks))
		}
	})

	t.Run("nested via path", func(t *testing.T) {
		bank := buildMathBank()
		removed, ok := RemoveSubBank(bank, []string{"algebra"}, "linear")
		if !ok || removed.ID != "linear" {
			t.Fatalf("got %v ok=%v", removed, ok)
		}
		if len(bank.SubBanks[0].SubBanks) != 0 {
			t.Error("linear still attached to algebra")
		}
		// Removed subtree keeps its exams for cascade deletion.
		if len(CollectExamIDs(removed)) != 1 {
			t.Errorf("removed subtree exams = %v", removed.ExamIDs)
		}
	})

	t.Run("bad path", func(t *testing.T) {
		bank := buildMathBank()
		if _, ok := RemoveSubBank(bank, []string{"missing"}, "linear"); ok {
			t.Error("removal through unresolvable path should fail")
		}
	})
}

func TestRename(t *testing.T) {
	bank := buildMathBank()
	if !Rename(bank, "linear", "Linear Algebra") {
		t.Fatal("rename failed")
	}
	node, _ := FindSubBank(bank, "linear")
	if node.Name != "Linear Algebra" {
		t.Errorf("name = %s", node.Name)
	}
	if Rename(bank, "missing", "x") {
		t.Error("renaming a missing node should fail")
	}
}
