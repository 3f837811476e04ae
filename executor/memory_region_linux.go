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

//go:build linux

package executor

import "syscall"

func mapReserve() *[addressSpace]byte {
	buf, err := syscall.Mmap(0, 0, addressSpace, syscall.PROT_NONE, syscall.MAP_PRIVATE|syscall.MAP_ANONYMOUS)
	if err != nil {
		panic("executor: couldn't reserve linear memory address space: " + err.Error())
	}
	return (*[addressSpace]byte)(buf)
}

func commitRange(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	return syscall.Mprotect(mem, syscall.PROT_READ|syscall.PROT_WRITE)
}

func decommitRange(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	if err := syscall.Madvise(mem, syscall.MADV_DONTNEED); err != nil {
		return err
	}
	return syscall.Mprotect(mem, syscall.PROT_NONE)
}

func releaseReserve(region *[addressSpace]byte) error {
	return syscall.Munmap(region[:])
}
