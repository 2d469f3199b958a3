package core

import "github.com/smarty/releases/contracts"

type CompoundIntegrityCheck struct {
	inners []contracts.IntegrityCheck
}

func NewCompoundIntegrityCheck(inners ...contracts.IntegrityCheck) *CompoundIntegrityCheck {
	return &CompoundIntegrityCheck{inners: inners}
}

func (this *CompoundIntegrityCheck) Verify(entries []contracts.ReleaseEntry, localPath string) error {
	for _, inner := range this.inners {
		err := inner.Verify(entries, localPath)
		if err != nil {
			return err
		}
	}
	return nil
}
