package database

import (
	"encoding/json"

	"github.com/rpupo63/dsa-learning-backend/models"
)

func strPtr(s string) *string {
	return &s
}

func jsonList(items ...string) *string {
	b, _ := json.Marshal(items)
	return strPtr(string(b))
}

func seedCategories() []models.Category {
	ds := models.CategoryTypeDataStructure
	alg := models.CategoryTypeAlgorithm
	category := func(name, slug, description string, t models.CategoryType, icon string, order int) models.Category {
		return models.Category{
			Name:        name,
			Slug:        slug,
			Description: strPtr(description),
			Type:        t,
			Icon:        strPtr(icon),
			Order:       order,
		}
	}
	return []models.Category{
		category("Arrays", "arrays", "Linear data structure that stores elements in contiguous memory locations", ds, "table", 1),
		category("Linked Lists", "linked-lists", "Linear data structure where elements are stored in nodes with pointers", ds, "link", 2),
		category("Stacks", "stacks", "LIFO (Last In First Out) data structure", ds, "layers", 3),
		category("Queues", "queues", "FIFO (First In First Out) data structure", ds, "list", 4),
		category("Trees", "trees", "Hierarchical data structure with root and children nodes", ds, "git-branch", 5),
		category("Graphs", "graphs", "Non-linear data structure with nodes and edges", ds, "network", 6),
		category("Hash Tables", "hash-tables", "Data structure that maps keys to values using hash functions", ds, "hash", 7),
		category("Heaps", "heaps", "Complete binary tree satisfying heap property", ds, "triangle", 8),
		category("Sorting", "sorting", "Algorithms to arrange elements in order", alg, "arrow-up-down", 9),
		category("Searching", "searching", "Algorithms to find elements in data structures", alg, "search", 10),
		category("Dynamic Programming", "dynamic-programming", "Optimization technique using memoization", alg, "zap", 11),
		category("Greedy", "greedy", "Algorithms that make locally optimal choices", alg, "target", 12),
		category("Graph Algorithms", "graph-algorithms", "Algorithms for traversing and analyzing graphs", alg, "share-2", 13),
	}
}

func seedExamples(categoryIDs map[string]int) []models.Example {
	return []models.Example{
		{
			Title:           "Dynamic Array (List)",
			Slug:            "dynamic-array",
			CategoryID:      categoryIDs["arrays"],
			Description:     strPtr("A resizable array that grows automatically when elements are added"),
			Explanation:     strPtr("Dynamic arrays start with a fixed size and double their capacity when they become full. This amortizes the cost of insertions."),
			TimeComplexity:  strPtr("O(1) average for append, O(n) for insert at position"),
			SpaceComplexity: strPtr("O(n)"),
			Difficulty:      models.DifficultyBeginner,
			CodeExample:     strPtr(dynamicArrayCode),
			UseCases: jsonList(
				"Storing collections of items",
				"Implementing other data structures",
				"Database record storage",
				"Image processing (pixel arrays)",
			),
			Pros: jsonList(
				"Fast random access O(1)",
				"Cache-friendly due to contiguous memory",
				"Simple to implement and use",
			),
			Cons: jsonList(
				"Insertions/deletions are expensive O(n)",
				"Fixed size (unless dynamic)",
				"Memory waste if not fully utilized",
			),
		},
	}
}

func seedAlgorithms() []models.Algorithm {
	return []models.Algorithm{
		{
			Name:                  "Quick Sort",
			Slug:                  "quick-sort",
			Category:              "sorting",
			Description:           strPtr("Efficient divide-and-conquer sorting algorithm"),
			Explanation:           strPtr("Quick Sort picks a pivot element and partitions the array around it, recursively sorting the subarrays."),
			Pseudocode:            strPtr(quickSortPseudocode),
			PythonCode:            strPtr(quickSortPython),
			JavascriptCode:        strPtr(quickSortJavascript),
			TimeComplexityBest:    strPtr("O(n log n)"),
			TimeComplexityAverage: strPtr("O(n log n)"),
			TimeComplexityWorst:   strPtr("O(n²)"),
			SpaceComplexity:       strPtr("O(log n)"),
			Difficulty:            models.DifficultyIntermediate,
			UseCases: jsonList(
				"General-purpose sorting",
				"Operating system schedulers",
				"Database query optimization",
				"Numerical computations",
			),
		},
	}
}

const dynamicArrayCode = `# Dynamic Array Example
class DynamicArray:
    def __init__(self):
        self.array = []

    def append(self, item):
        self.array.append(item)

    def get(self, index):
        return self.array[index]

    def size(self):
        return len(self.array)

# Usage
arr = DynamicArray()
arr.append(1)
arr.append(2)
arr.append(3)
print(f"Size: {arr.size()}")  # Output: 3
print(f"Element at index 1: {arr.get(1)}")  # Output: 2
`

const quickSortPseudocode = `function quickSort(array, low, high):
    if low < high:
        pivotIndex = partition(array, low, high)
        quickSort(array, low, pivotIndex - 1)
        quickSort(array, pivotIndex + 1, high)

function partition(array, low, high):
    pivot = array[high]
    i = low - 1
    for j = low to high - 1:
        if array[j] < pivot:
            i = i + 1
            swap array[i] with array[j]
    swap array[i + 1] with array[high]
    return i + 1
`

const quickSortPython = `def quick_sort(arr, low, high):
    if low < high:
        pivot_index = partition(arr, low, high)
        quick_sort(arr, low, pivot_index - 1)
        quick_sort(arr, pivot_index + 1, high)

def partition(arr, low, high):
    pivot = arr[high]
    i = low - 1

    for j in range(low, high):
        if arr[j] < pivot:
            i += 1
            arr[i], arr[j] = arr[j], arr[i]

    arr[i + 1], arr[high] = arr[high], arr[i + 1]
    return i + 1

# Example usage
arr = [64, 34, 25, 12, 22, 11, 90]
quick_sort(arr, 0, len(arr) - 1)
print("Sorted array:", arr)
`

const quickSortJavascript = `function quickSort(arr, low = 0, high = arr.length - 1) {
    if (low < high) {
        const pivotIndex = partition(arr, low, high);
        quickSort(arr, low, pivotIndex - 1);
        quickSort(arr, pivotIndex + 1, high);
    }
    return arr;
}

function partition(arr, low, high) {
    const pivot = arr[high];
    let i = low - 1;

    for (let j = low; j < high; j++) {
        if (arr[j] < pivot) {
            i++;
            [arr[i], arr[j]] = [arr[j], arr[i]];
        }
    }

    [arr[i + 1], arr[high]] = [arr[high], arr[i + 1]];
    return i + 1;
}

// Example usage
const arr = [64, 34, 25, 12, 22, 11, 90];
quickSort(arr);
console.log("Sorted array:", arr);
`
