// Package banktree implements the in-memory operations over a bank's
// recursive sub-bank tree. All functions mutate the aggregate in memory;
// persistence of the whole bank document is the caller's concern.
package banktree

import (
	"fmt"

	"exam-service/internal/models"
)

// CreateCheck is the result of a pre-flight depth check.
type CreateCheck struct {
	CanCreate    bool   `json:"can_create"`
	CurrentDepth int    `json:"current_depth"`
	MaxDepth     int    `json:"max_depth"`
	Reason       string `json:"reason,omitempty"`
}

// CanCreateAtPath checks whether a sub-bank may be created under the node
// addressed by path. The bank root is depth 1, so a node addressed by a
// path of N segments sits at depth N+1.
func CanCreateAtPath(path []string) CreateCheck {
	depth := len(path) + 1
	check := CreateCheck{
		CurrentDepth: depth,
		MaxDepth:     models.MaxSubBankDepth,
	}
	if depth < models.MaxSubBankDepth {
		check.CanCreate = true
		return check
	}
	check.Reason = fmt.Sprintf("sub-bank at depth %d cannot have children (max depth %d)", depth, models.MaxSubBankDepth)
	return check
}

// CanCreateIn locates subBankID anywhere in the bank's tree (depth-first,
// first match wins) and checks whether it may gain another child.
func CanCreateIn(bank *models.Bank, subBankID string) (CreateCheck, bool) {
	node, depth := FindSubBank(bank, subBankID)
	if node == nil {
		return CreateCheck{
			CanCreate: false,
			MaxDepth:  models.MaxSubBankDepth,
			Reason:    "sub-bank not found",
		}, false
	}
	check := CreateCheck{
		CurrentDepth: depth,
		MaxDepth:     models.MaxSubBankDepth,
	}
	if depth < models.MaxSubBankDepth {
		check.CanCreate = true
	} else {
		check.Reason = fmt.Sprintf("sub-bank at depth %d cannot have children (max depth %d)", depth, models.MaxSubBankDepth)
	}
	return check, true
}

// FindSubBank does a depth-first search from the root and returns the
// first node matching id along with its depth. Direct children of the
// bank are depth 2. Returns (nil, 0) when no node matches.
func FindSubBank(bank *models.Bank, id string) (*models.SubBank, int) {
	return findIn(bank.SubBanks, id, 2)
}

func findIn(nodes []models.SubBank, id string, depth int) (*models.SubBank, int) {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i], depth
		}
		if found, d := findIn(nodes[i].SubBanks, id, depth+1); found != nil {
			return found, d
		}
	}
	return nil, 0
}

// ResolvePath walks the tree following path one id per level. A leading
// segment equal to the bank's own id is stripped. Returns nil if any
// segment cannot be resolved.
func ResolvePath(bank *models.Bank, path []string) *models.SubBank {
	if len(path) > 0 && path[0] == bank.ID {
		path = path[1:]
	}
	if len(path) == 0 {
		return nil
	}
	nodes := bank.SubBanks
	var current *models.SubBank
	for _, segment := range path {
		current = nil
		for i := range nodes {
			if nodes[i].ID == segment {
				current = &nodes[i]
				break
			}
		}
		if current == nil {
			return nil
		}
		nodes = current.SubBanks
	}
	return current
}

// AddExam appends examID to the node's exam list with set semantics.
// Returns false when the id was already present.
func AddExam(node *models.SubBank, examID string) bool {
	for _, id := range node.ExamIDs {
		if id == examID {
			return false
		}
	}
	node.ExamIDs = append(node.ExamIDs, examID)
	return true
}

// RemoveExam deletes examID from the node's exam list. Returns false
// when the id was not present.
func RemoveExam(node *models.SubBank, examID string) bool {
	for i, id := range node.ExamIDs {
		if id == examID {
			node.ExamIDs = append(node.ExamIDs[:i], node.ExamIDs[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveExamEverywhere strips examID from the bank's top-level list and
// from every node in the tree. Returns true if anything changed.
func RemoveExamEverywhere(bank *models.Bank, examID string) bool {
	changed := false
	for i, id := range bank.ExamIDs {
		if id == examID {
			bank.ExamIDs = append(bank.ExamIDs[:i], bank.ExamIDs[i+1:]...)
			changed = true
			break
		}
	}
	if removeExamIn(bank.SubBanks, examID) {
		changed = true
	}
	return changed
}

func removeExamIn(nodes []models.SubBank, examID string) bool {
	changed := false
	for i := range nodes {
		if RemoveExam(&nodes[i], examID) {
			changed = true
		}
		if removeExamIn(nodes[i].SubBanks, examID) {
			changed = true
		}
	}
	return changed
}

// CollectExamIDs gathers every exam id in the node and its descendants,
// pre-order.
func CollectExamIDs(node *models.SubBank) []string {
	ids := append([]string(nil), node.ExamIDs...)
	for i := range node.SubBanks {
		ids = append(ids, CollectExamIDs(&node.SubBanks[i])...)
	}
	return ids
}

// CollectBankExamIDs gathers the bank's own exam ids plus every id held
// anywhere in its sub-bank tree.
func CollectBankExamIDs(bank *models.Bank) []string {
	ids := append([]string(nil), bank.ExamIDs...)
	for i := range bank.SubBanks {
		ids = append(ids, CollectExamIDs(&bank.SubBanks[i])...)
	}
	return ids
}

// RemoveSubBank detaches the node with subBankID from its parent. With an
// empty path the node is filtered out of the bank's direct children;
// otherwise path is resolved first and the node is spliced out of the
// resolved parent's child list. The removed subtree is returned so the
// caller can cascade-delete its exams.
func RemoveSubBank(bank *models.Bank, path []string, subBankID string) (*models.SubBank, bool) {
	if len(path) == 0 || (len(path) == 1 && path[0] == bank.ID) {
		return spliceChild(&bank.SubBanks, subBankID)
	}
	parent := ResolvePath(bank, path)
	if parent == nil {
		return nil, false
	}
	return spliceChild(&parent.SubBanks, subBankID)
}

func spliceChild(nodes *[]models.SubBank, id string) (*models.SubBank, bool) {
	for i := range *nodes {
		if (*nodes)[i].ID == id {
			removed := (*nodes)[i]
			*nodes = append((*nodes)[:i], (*nodes)[i+1:]...)
			return &removed, true
		}
	}
	return nil, false
}

// Rename changes the name of the first node matching subBankID.
func Rename(bank *models.Bank, subBankID, name string) bool {
	node, _ := FindSubBank(bank, subBankID)
	if node == nil {
		return false
	}
	node.Name = name
	return true
}
