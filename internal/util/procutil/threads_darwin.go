//go:build darwin && cgo

package procutil

/*
#include <unistd.h>
#include <mach/mach.h>

// https://stackoverflow.com/a/21571172/525656
//
// The kernel-allocated thread list must be released on every path that
// received it, or the port rights leak.
static int procutil_thread_count(void) {
	thread_array_t threadList;
	mach_msg_type_number_t threadCount;
	task_t task;

	kern_return_t kernReturn = task_for_pid(mach_task_self(), getpid(), &task);
	if (kernReturn != KERN_SUCCESS) {
		return -1;
	}

	kernReturn = task_threads(task, &threadList, &threadCount);
	if (kernReturn != KERN_SUCCESS) {
		return -1;
	}
	vm_deallocate(mach_task_self(), (vm_address_t)threadList, threadCount * sizeof(thread_act_t));

	return (int)threadCount;
}
*/
import "C"

// ThreadCount returns the number of OS threads of the calling process via
// the Mach task interface. It returns -1 when either kernel call is denied.
func ThreadCount() int {
	return int(C.procutil_thread_count())
}
