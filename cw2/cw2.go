// Package cw2 stores the identity of the contract code that owns a contract instance.
package cw2

import (
	"github.com/pkg/errors"

	vmcontext "github.com/coschain/mide-token/vm/context"
)

// ContractInfoKey is the storage key of the identity record.
var ContractInfoKey = []byte("contract_info")

var ErrStorageConflict = errors.New("contract version already set")

type ContractVersion struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// SetContractVersion writes the identity record. It can only be written once per instance.
func SetContractVersion(store vmcontext.Storage, name, version string) error {
	existing, err := store.Get(ContractInfoKey)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.Wrapf(ErrStorageConflict, "%s", ContractInfoKey)
	}
	return vmcontext.SaveJSON(store, ContractInfoKey, "cw2::ContractVersion", &ContractVersion{
		Contract: name,
		Version:  version,
	})
}

func GetContractVersion(store vmcontext.ReadonlyStorage) (*ContractVersion, error) {
	cv := new(ContractVersion)
	found, err := vmcontext.LoadJSON(store, ContractInfoKey, "cw2::ContractVersion", cv)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, vmcontext.NewNotFound("cw2::ContractVersion")
	}
	return cv, nil
}
