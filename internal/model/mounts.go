package model

import "slices"

var (
	networkFilesystems = []string{
		"smbfs", "nfs", "nfs4", "afpfs", "webdav", "cifs", "smb3", "fuse.sshfs",
	}
	pseudoFilesystems = []string{
		"devfs", "autofs", "mtmfs", "nullfs",
		"proc", "sysfs", "devtmpfs", "devpts", "cgroup", "cgroup2",
		"securityfs", "pstore", "bpf", "tracefs", "debugfs", "mqueue",
		"hugetlbfs", "configfs", "fusectl", "binfmt_misc", "rpc_pipefs",
		"nsfs", "efivarfs", "selinuxfs",
	}
)

// isFilteredFilesystem returns true if the filesystem type should be filtered out
func isFilteredFilesystem(fsType string) bool {
	return slices.Contains(networkFilesystems, fsType) || slices.Contains(pseudoFilesystems, fsType)
}
