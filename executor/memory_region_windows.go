// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

//go:build windows

package executor

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapReserve() *[addressSpace]byte {
	base, err := windows.VirtualAlloc(0, addressSpace, windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		panic("executor: VirtualAlloc(reserve): " + err.Error())
	}
	return (*[addressSpace]byte)(unsafe.Pointer(base))
}

func commitRange(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	_, err := windows.VirtualAlloc(uintptr(unsafe.Pointer(&mem[0])), uintptr(len(mem)), windows.MEM_COMMIT, windows.PAGE_READWRITE)
	return err
}

func decommitRange(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&mem[0])), uintptr(len(mem)), windows.MEM_DECOMMIT)
}

func releaseReserve(region *[addressSpace]byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(&region[0])), 0, windows.MEM_RELEASE)
}
