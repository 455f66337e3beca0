package problem_service

import (
	"github.com/bighasbula/ITEENS/internal/service/judge_service"
)

// The practice catalog. Every problem reads its arguments from stdin and
// prints the answer so the judge can compare plain output.
var problems = []Problem{
	{
		ID:           "sleep-in",
		Name:         "Sleep In",
		Difficulty:   DifficultyEasy,
		Description:  "You can sleep in if it's not a weekday or you're on vacation. Write a function sleep_in(weekday, vacation).",
		SampleInput:  "sleep_in(False, False)",
		SampleOutput: "True",
		Tags:         []string{"booleans", "conditionals"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def sleep_in(weekday, vacation):\n    return not weekday or vacation",
			judge_service.LanguageJavascript: "function sleepIn(weekday, vacation) {\n    return !weekday || vacation;\n}",
			judge_service.LanguageJava:       "public static boolean sleepIn(boolean weekday, boolean vacation) {\n    return !weekday || vacation;\n}",
			judge_service.LanguageCpp:        "bool sleepIn(bool weekday, bool vacation) {\n    return !weekday || vacation;\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "False\nFalse", ExpectedOutput: "true"},
			{Input: "True\nFalse", ExpectedOutput: "false"},
			{Input: "False\nTrue", ExpectedOutput: "true"},
			{Input: "True\nTrue", ExpectedOutput: "true"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def sleep_in(weekday, vacation):
    # Your code here
    pass

# Read input
weekday = input().lower() == 'true'
vacation = input().lower() == 'true'

# Call function and print result
result = sleep_in(weekday, vacation)
print(result)`,
			judge_service.LanguageJavascript: `function sleepIn(weekday, vacation) {
    // Your code here
}

// Read input
const weekday = readline() === 'true';
const vacation = readline() === 'true';

// Call function and print result
const result = sleepIn(weekday, vacation);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static boolean sleepIn(boolean weekday, boolean vacation) {
        // Your code here
        return false;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        boolean weekday = scanner.nextBoolean();
        boolean vacation = scanner.nextBoolean();

        boolean result = sleepIn(weekday, vacation);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <string>
using namespace std;

bool sleepIn(bool weekday, bool vacation) {
    // Your code here
    return false;
}

int main() {
    string weekdayStr, vacationStr;
    cin >> weekdayStr >> vacationStr;

    bool weekday = (weekdayStr == "true");
    bool vacation = (vacationStr == "true");

    bool result = sleepIn(weekday, vacation);
    cout << (result ? "true" : "false") << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "monkey-trouble",
		Name:         "Monkey Trouble",
		Difficulty:   DifficultyEasy,
		Description:  "We have two monkeys, a and b. We are in trouble if both are smiling or both are not smiling.",
		SampleInput:  "monkey_trouble(True, True)",
		SampleOutput: "True",
		Tags:         []string{"booleans", "logic"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def monkey_trouble(a_smile, b_smile):\n    return a_smile == b_smile",
			judge_service.LanguageJavascript: "function monkeyTrouble(aSmile, bSmile) {\n    return aSmile === bSmile;\n}",
			judge_service.LanguageJava:       "public static boolean monkeyTrouble(boolean aSmile, boolean bSmile) {\n    return aSmile == bSmile;\n}",
			judge_service.LanguageCpp:        "bool monkeyTrouble(bool aSmile, bool bSmile) {\n    return aSmile == bSmile;\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "True\nTrue", ExpectedOutput: "true"},
			{Input: "False\nFalse", ExpectedOutput: "true"},
			{Input: "True\nFalse", ExpectedOutput: "false"},
			{Input: "False\nTrue", ExpectedOutput: "false"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def monkey_trouble(a_smile, b_smile):
    # Your code here
    pass

# Read input
a_smile = input().lower() == 'true'
b_smile = input().lower() == 'true'

# Call function and print result
result = monkey_trouble(a_smile, b_smile)
print(result)`,
			judge_service.LanguageJavascript: `function monkeyTrouble(aSmile, bSmile) {
    // Your code here
}

// Read input
const aSmile = readline() === 'true';
const bSmile = readline() === 'true';

// Call function and print result
const result = monkeyTrouble(aSmile, bSmile);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static boolean monkeyTrouble(boolean aSmile, boolean bSmile) {
        // Your code here
        return false;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        boolean aSmile = scanner.nextBoolean();
        boolean bSmile = scanner.nextBoolean();

        boolean result = monkeyTrouble(aSmile, bSmile);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <string>
using namespace std;

bool monkeyTrouble(bool aSmile, bool bSmile) {
    // Your code here
    return false;
}

int main() {
    string aSmileStr, bSmileStr;
    cin >> aSmileStr >> bSmileStr;

    bool aSmile = (aSmileStr == "true");
    bool bSmile = (bSmileStr == "true");

    bool result = monkeyTrouble(aSmile, bSmile);
    cout << (result ? "true" : "false") << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "sum-double",
		Name:         "Sum Double",
		Difficulty:   DifficultyEasy,
		Description:  "Given two int values, return their sum. If the values are the same, return double their sum.",
		SampleInput:  "sum_double(1, 2)",
		SampleOutput: "3",
		Tags:         []string{"math", "conditionals"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def sum_double(a, b):\n    return a + b if a != b else 2 * (a + b)",
			judge_service.LanguageJavascript: "function sumDouble(a, b) {\n    return a === b ? 2 * (a + b) : a + b;\n}",
			judge_service.LanguageJava:       "public static int sumDouble(int a, int b) {\n    return a == b ? 2 * (a + b) : a + b;\n}",
			judge_service.LanguageCpp:        "int sumDouble(int a, int b) {\n    return a == b ? 2 * (a + b) : a + b;\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "1\n2", ExpectedOutput: "3"},
			{Input: "3\n2", ExpectedOutput: "5"},
			{Input: "2\n2", ExpectedOutput: "8"},
			{Input: "-1\n0", ExpectedOutput: "-1"},
			{Input: "3\n3", ExpectedOutput: "12"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def sum_double(a, b):
    # Your code here
    pass

# Read input
a = int(input())
b = int(input())

# Call function and print result
result = sum_double(a, b)
print(result)`,
			judge_service.LanguageJavascript: `function sumDouble(a, b) {
    // Your code here
}

// Read input
const a = parseInt(readline());
const b = parseInt(readline());

// Call function and print result
const result = sumDouble(a, b);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static int sumDouble(int a, int b) {
        // Your code here
        return 0;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        int a = scanner.nextInt();
        int b = scanner.nextInt();

        int result = sumDouble(a, b);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
using namespace std;

int sumDouble(int a, int b) {
    // Your code here
    return 0;
}

int main() {
    int a, b;
    cin >> a >> b;

    int result = sumDouble(a, b);
    cout << result << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "diff21",
		Name:         "Diff21",
		Difficulty:   DifficultyEasy,
		Description:  "Given an int n, return the absolute difference between n and 21, except return double the absolute difference if n is over 21.",
		SampleInput:  "diff21(19)",
		SampleOutput: "2",
		Tags:         []string{"math", "abs"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def diff21(n):\n    return abs(n - 21) if n <= 21 else 2 * abs(n - 21)",
			judge_service.LanguageJavascript: "function diff21(n) {\n    return n <= 21 ? Math.abs(n - 21) : 2 * Math.abs(n - 21);\n}",
			judge_service.LanguageJava:       "public static int diff21(int n) {\n    return n <= 21 ? Math.abs(n - 21) : 2 * Math.abs(n - 21);\n}",
			judge_service.LanguageCpp:        "int diff21(int n) {\n    return n <= 21 ? abs(n - 21) : 2 * abs(n - 21);\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "19", ExpectedOutput: "2"},
			{Input: "10", ExpectedOutput: "11"},
			{Input: "21", ExpectedOutput: "0"},
			{Input: "22", ExpectedOutput: "2"},
			{Input: "25", ExpectedOutput: "8"},
			{Input: "30", ExpectedOutput: "18"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def diff21(n):
    # Your code here
    pass

# Read input
n = int(input())

# Call function and print result
result = diff21(n)
print(result)`,
			judge_service.LanguageJavascript: `function diff21(n) {
    // Your code here
}

// Read input
const n = parseInt(readline());

// Call function and print result
const result = diff21(n);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static int diff21(int n) {
        // Your code here
        return 0;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        int n = scanner.nextInt();

        int result = diff21(n);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <cstdlib>
using namespace std;

int diff21(int n) {
    // Your code here
    return 0;
}

int main() {
    int n;
    cin >> n;

    int result = diff21(n);
    cout << result << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "parrot-trouble",
		Name:         "Parrot Trouble",
		Difficulty:   DifficultyEasy,
		Description:  "We are in trouble if the parrot is talking and the hour is before 7 or after 20.",
		SampleInput:  "parrot_trouble(True, 6)",
		SampleOutput: "True",
		Tags:         []string{"booleans", "time"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def parrot_trouble(talking, hour):\n    return talking and (hour < 7 or hour > 20)",
			judge_service.LanguageJavascript: "function parrotTrouble(talking, hour) {\n    return talking && (hour < 7 || hour > 20);\n}",
			judge_service.LanguageJava:       "public static boolean parrotTrouble(boolean talking, int hour) {\n    return talking && (hour < 7 || hour > 20);\n}",
			judge_service.LanguageCpp:        "bool parrotTrouble(bool talking, int hour) {\n    return talking && (hour < 7 || hour > 20);\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "True\n6", ExpectedOutput: "true"},
			{Input: "True\n7", ExpectedOutput: "false"},
			{Input: "False\n6", ExpectedOutput: "false"},
			{Input: "True\n21", ExpectedOutput: "true"},
			{Input: "False\n21", ExpectedOutput: "false"},
			{Input: "True\n23", ExpectedOutput: "true"},
			{Input: "True\n20", ExpectedOutput: "false"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def parrot_trouble(talking, hour):
    # Your code here
    pass

# Read input
talking = input().lower() == 'true'
hour = int(input())

# Call function and print result
result = parrot_trouble(talking, hour)
print(result)`,
			judge_service.LanguageJavascript: `function parrotTrouble(talking, hour) {
    // Your code here
}

// Read input
const talking = readline() === 'true';
const hour = parseInt(readline());

// Call function and print result
const result = parrotTrouble(talking, hour);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static boolean parrotTrouble(boolean talking, int hour) {
        // Your code here
        return false;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        boolean talking = scanner.nextBoolean();
        int hour = scanner.nextInt();

        boolean result = parrotTrouble(talking, hour);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <string>
using namespace std;

bool parrotTrouble(bool talking, int hour) {
    // Your code here
    return false;
}

int main() {
    string talkingStr;
    int hour;
    cin >> talkingStr >> hour;

    bool talking = (talkingStr == "true");

    bool result = parrotTrouble(talking, hour);
    cout << (result ? "true" : "false") << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "string-times",
		Name:         "String Times",
		Difficulty:   DifficultyMedium,
		Description:  "Given a string and a non-negative int n, return a larger string that is n copies of the original string. Write a function string_times(str, n).",
		SampleInput:  "string_times('Hi', 3)",
		SampleOutput: "HiHiHi",
		Tags:         []string{"strings", "loops"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def string_times(str, n):\n    return str * n",
			judge_service.LanguageJavascript: "function stringTimes(str, n) {\n    return str.repeat(n);\n}",
			judge_service.LanguageJava:       "public static String stringTimes(String str, int n) {\n    return str.repeat(n);\n}",
			judge_service.LanguageCpp:        "string stringTimes(string str, int n) {\n    string result = \"\";\n    for (int i = 0; i < n; i++) {\n        result += str;\n    }\n    return result;\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "Hi\n3", ExpectedOutput: "HiHiHi"},
			{Input: "Hi\n1", ExpectedOutput: "Hi"},
			{Input: "Hi\n0", ExpectedOutput: ""},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def string_times(str, n):
    # Your code here
    pass

# Read input
str_val = input()
n = int(input())

# Call function and print result
result = string_times(str_val, n)
print(result)`,
			judge_service.LanguageJavascript: `function stringTimes(str, n) {
    // Your code here
}

// Read input
const strVal = readline();
const n = parseInt(readline(), 10);

// Call function and print result
const result = stringTimes(strVal, n);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static String stringTimes(String str, int n) {
        // Your code here
        return "";
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String strVal = scanner.nextLine();
        int n = scanner.nextInt();

        String result = stringTimes(strVal, n);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <string>
using namespace std;

string stringTimes(string str, int n) {
    // Your code here
    return "";
}

int main() {
    string strVal;
    int n;
    getline(cin, strVal);
    cin >> n;

    string result = stringTimes(strVal, n);
    cout << result << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "front-times",
		Name:         "Front Times",
		Difficulty:   DifficultyMedium,
		Description:  "Given a string and a non-negative int n, we'll say that the 'front' of the string is the first 3 chars, or whatever is there if the string is less than length 3. Return n copies of the front.",
		SampleInput:  "front_times('Chocolate', 2)",
		SampleOutput: "ChoCho",
		Tags:         []string{"strings", "loops"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def front_times(str, n):\n    front_len = 3 if len(str) >= 3 else len(str)\n    front = str[:front_len]\n    return front * n",
			judge_service.LanguageJavascript: "function frontTimes(str, n) {\n    const frontLen = str.length >= 3 ? 3 : str.length;\n    const front = str.substring(0, frontLen);\n    return front.repeat(n);\n}",
			judge_service.LanguageJava:       "public static String frontTimes(String str, int n) {\n    int frontLen = str.length() >= 3 ? 3 : str.length();\n    String front = str.substring(0, frontLen);\n    return front.repeat(n);\n}",
			judge_service.LanguageCpp:        "string frontTimes(string str, int n) {\n    int frontLen = str.length() >= 3 ? 3 : str.length();\n    string front = str.substr(0, frontLen);\n    string result = \"\";\n    for (int i = 0; i < n; i++) {\n        result += front;\n    }\n    return result;\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "Chocolate\n2", ExpectedOutput: "ChoCho"},
			{Input: "Chocolate\n3", ExpectedOutput: "ChoChoCho"},
			{Input: "Abc\n3", ExpectedOutput: "AbcAbcAbc"},
			{Input: "Hi\n4", ExpectedOutput: "HiHiHiHi"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def front_times(str, n):
    # Your code here
    pass

# Read input
s = input()
n = int(input())

# Call function and print result
result = front_times(s, n)
print(result)`,
			judge_service.LanguageJavascript: `function frontTimes(str, n) {
    // Your code here
}

// Read input
const s = readline();
const n = parseInt(readline());

// Call function and print result
const result = frontTimes(s, n);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static String frontTimes(String str, int n) {
        // Your code here
        return "";
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String s = scanner.nextLine();
        int n = scanner.nextInt();

        String result = frontTimes(s, n);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <string>
using namespace std;

string frontTimes(string str, int n) {
    // Your code here
    return "";
}

int main() {
    string s;
    int n;
    getline(cin, s);
    cin >> n;

    string result = frontTimes(s, n);
    cout << result << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "array-123",
		Name:         "Array 123",
		Difficulty:   DifficultyMedium,
		Description:  "Given an array of integers, return True if the sequence of numbers 1, 2, 3 appears in the array somewhere.",
		SampleInput:  "array123([1, 1, 2, 3, 1])",
		SampleOutput: "True",
		Tags:         []string{"arrays", "loops", "conditionals"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def array123(nums):\n    for i in range(len(nums) - 2):\n        if nums[i] == 1 and nums[i+1] == 2 and nums[i+2] == 3:\n            return True\n    return False",
			judge_service.LanguageJavascript: "function array123(nums) {\n    for (let i = 0; i < nums.length - 2; i++) {\n        if (nums[i] === 1 && nums[i+1] === 2 && nums[i+2] === 3) {\n            return true;\n        }\n    }\n    return false;\n}",
			judge_service.LanguageJava:       "public static boolean array123(int[] nums) {\n    for (int i = 0; i < nums.length - 2; i++) {\n        if (nums[i] == 1 && nums[i+1] == 2 && nums[i+2] == 3) {\n            return true;\n        }\n    }\n    return false;\n}",
			judge_service.LanguageCpp:        "bool array123(vector<int>& nums) {\n    for (int i = 0; i < nums.size() - 2; i++) {\n        if (nums[i] == 1 && nums[i+1] == 2 && nums[i+2] == 3) {\n            return true;\n        }\n    }\n    return false;\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "1 1 2 3 1", ExpectedOutput: "true"},
			{Input: "1 1 2 4 1", ExpectedOutput: "false"},
			{Input: "1 1 2 1 2 3", ExpectedOutput: "true"},
			{Input: "3 2 1 2 3", ExpectedOutput: "true"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def array123(nums):
    # Your code here
    pass

# Read input
nums = list(map(int, input().split()))

# Call function and print result
result = array123(nums)
print(result)`,
			judge_service.LanguageJavascript: `function array123(nums) {
    // Your code here
}

// Read input
const nums = readline().split(" ").map(Number);

// Call function and print result
const result = array123(nums);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static boolean array123(int[] nums) {
        // Your code here
        return false;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String[] parts = scanner.nextLine().split(" ");
        int[] nums = new int[parts.length];
        for (int i = 0; i < parts.length; i++) {
            nums[i] = Integer.parseInt(parts[i]);
        }

        boolean result = array123(nums);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <vector>
#include <string>
#include <sstream>
using namespace std;

bool array123(vector<int> nums) {
    // Your code here
    return false;
}

int main() {
    string line;
    getline(cin, line);
    stringstream ss(line);
    vector<int> nums;
    int num;
    while (ss >> num) {
        nums.push_back(num);
    }

    bool result = array123(nums);
    cout << (result ? "true" : "false") << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "same-first-last",
		Name:         "Same First Last",
		Difficulty:   DifficultyMedium,
		Description:  "Given an array of integers, return True if the array length is 1 or more, and the first element and the last element are the same.",
		SampleInput:  "same_first_last([1, 2, 3, 1])",
		SampleOutput: "True",
		Tags:         []string{"arrays", "conditionals"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython:     "def same_first_last(nums):\n    return len(nums) >= 1 and nums[0] == nums[-1]",
			judge_service.LanguageJavascript: "function sameFirstLast(nums) {\n    return nums.length >= 1 && nums[0] === nums[nums.length - 1];\n}",
			judge_service.LanguageJava:       "public static boolean sameFirstLast(int[] nums) {\n    return nums.length >= 1 && nums[0] == nums[nums.length - 1];\n}",
			judge_service.LanguageCpp:        "bool sameFirstLast(vector<int>& nums) {\n    return nums.size() >= 1 && nums[0] == nums[nums.size() - 1];\n}",
		},
		TestCases: []judge_service.TestCase{
			{Input: "1 2 3 1", ExpectedOutput: "True"},
			{Input: "1 2 3", ExpectedOutput: "False"},
			{Input: "7", ExpectedOutput: "True"},
			{Input: "5 5 5 5", ExpectedOutput: "True"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `def same_first_last(nums):
    # Your code here
    pass

# Read input
nums = list(map(int, input().split()))

# Call function and print result
result = same_first_last(nums)
print(result)`,
			judge_service.LanguageJavascript: `function sameFirstLast(nums) {
    // Your code here
}

// Read input
const nums = readline().split(" ").map(Number);

// Call function and print result
const result = sameFirstLast(nums);
console.log(result);`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static boolean sameFirstLast(int[] nums) {
        // Your code here
        return false;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String[] parts = scanner.nextLine().split(" ");
        int[] nums = new int[parts.length];
        for (int i = 0; i < parts.length; i++) {
            nums[i] = Integer.parseInt(parts[i]);
        }

        boolean result = sameFirstLast(nums);
        System.out.println(result);
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <vector>
#include <string>
#include <sstream>
using namespace std;

bool sameFirstLast(vector<int> nums) {
    // Your code here
    return false;
}

int main() {
    string line;
    getline(cin, line);
    stringstream ss(line);
    vector<int> nums;
    int num;
    while (ss >> num) {
        nums.push_back(num);
    }

    bool result = sameFirstLast(nums);
    cout << (result ? "true" : "false") << endl;

    return 0;
}`,
		},
	},
	{
		ID:           "two-sum",
		Name:         "Two Sum",
		Difficulty:   DifficultyHard,
		Description:  "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target. You may assume that each input would have exactly one solution, and you may not use the same element twice.",
		SampleInput:  "[2, 7, 11, 15]\n9",
		SampleOutput: "[0, 1]",
		Tags:         []string{"arrays", "hash-table"},
		IdealSolution: map[judge_service.Language]string{
			judge_service.LanguagePython: `def twoSum(nums, target):
    seen = {}
    for i, num in enumerate(nums):
        complement = target - num
        if complement in seen:
            return [seen[complement], i]
        seen[num] = i
    return []`,
			judge_service.LanguageJavascript: `function twoSum(nums, target) {
    const seen = {};
    for (let i = 0; i < nums.length; i++) {
        const complement = target - nums[i];
        if (complement in seen) {
            return [seen[complement], i];
        }
        seen[nums[i]] = i;
    }
    return [];
}`,
			judge_service.LanguageJava: `public static int[] twoSum(int[] nums, int target) {
    Map<Integer, Integer> seen = new HashMap<>();
    for (int i = 0; i < nums.length; i++) {
        int complement = target - nums[i];
        if (seen.containsKey(complement)) {
            return new int[]{seen.get(complement), i};
        }
        seen.put(nums[i], i);
    }
    return new int[0];
}`,
			judge_service.LanguageCpp: `vector<int> twoSum(vector<int>& nums, int target) {
    unordered_map<int, int> seen;
    for (int i = 0; i < nums.size(); i++) {
        int complement = target - nums[i];
        if (seen.find(complement) != seen.end()) {
            return {seen[complement], i};
        }
        seen[nums[i]] = i;
    }
    return {};
}`,
		},
		TestCases: []judge_service.TestCase{
			{Input: "[2, 7, 11, 15]\n9", ExpectedOutput: "[0, 1]"},
			{Input: "[3, 2, 4]\n6", ExpectedOutput: "[1, 2]"},
			{Input: "[3, 3]\n6", ExpectedOutput: "[0, 1]"},
			{Input: "[1, 5, 8, 10, 13]\n18", ExpectedOutput: "[2, 4]"},
			{Input: "[0, 4, 3, 0]\n0", ExpectedOutput: "[0, 3]"},
		},
		StarterCode: map[judge_service.Language]string{
			judge_service.LanguagePython: `import ast

def twoSum(nums, target):
    # Your code here
    pass

# Read input
input_line = input()
nums = ast.literal_eval(input_line)
target = int(input())

# Call function and print result
result = twoSum(nums, target)
print(result)`,
			judge_service.LanguageJavascript: `function twoSum(nums, target) {
    // Your code here
}

// Read input
const inputLine = readline();
const nums = JSON.parse(inputLine);
const target = parseInt(readline());

// Call function and print result
const result = twoSum(nums, target);
console.log(JSON.stringify(result));`,
			judge_service.LanguageJava: `import java.util.*;

public class Main {
    public static int[] twoSum(int[] nums, int target) {
        // Your code here
        return new int[0];
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String inputLine = scanner.nextLine();
        String[] numStrings = inputLine.substring(1, inputLine.length() - 1).split(",");
        int[] nums = new int[numStrings.length];
        for (int i = 0; i < numStrings.length; i++) {
            nums[i] = Integer.parseInt(numStrings[i].trim());
        }
        int target = scanner.nextInt();

        int[] result = twoSum(nums, target);
        System.out.println(Arrays.toString(result));
    }
}`,
			judge_service.LanguageCpp: `#include <iostream>
#include <vector>
#include <sstream>
#include <string>
using namespace std;

vector<int> twoSum(vector<int>& nums, int target) {
    // Your code here
    return {};
}

int main() {
    string inputLine;
    getline(cin, inputLine);

    inputLine = inputLine.substr(1, inputLine.length() - 2);
    stringstream ss(inputLine);
    vector<int> nums;
    string item;

    while (getline(ss, item, ',')) {
        nums.push_back(stoi(item));
    }

    int target;
    cin >> target;

    vector<int> result = twoSum(nums, target);
    cout << "[";
    for (int i = 0; i < result.size(); i++) {
        cout << result[i];
        if (i < result.size() - 1) cout << ", ";
    }
    cout << "]" << endl;

    return 0;
}`,
		},
	},
}
